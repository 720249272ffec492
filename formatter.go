package htmlcheck

import (
	"bytes"
	"encoding/json"
)

// JSONIndent is the indentation used by FormatJSON.
const JSONIndent = "    "

// FormatJSON formats a result as an indented JSON object mapping each
// selector to its presence. Keys keep the result's entry order and a nil or
// empty result formats as {}.
func FormatJSON(r *Result) (string, error) {
	if r == nil {
		r = &Result{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", JSONIndent)
	if err := enc.Encode(r); err != nil {
		return "", Errorf(EINTERNAL, "formatting result: %v", err)
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
