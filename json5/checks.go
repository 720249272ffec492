// Package json5 loads checks files written in JSON5, which allows comments
// and trailing commas in the selector list.
package json5

import (
	"io"

	"github.com/fwojciec/htmlcheck"
	"github.com/titanous/json5"
)

// Ext is the file extension that selects the JSON5 loader.
const Ext = ".json5"

// LoadChecks reads a JSON5 array of selector strings from r. Syntax errors
// return EPARSE; the schema rules match htmlcheck.LoadChecks.
func LoadChecks(r io.Reader) (htmlcheck.CheckList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINTERNAL, "reading checks: %v", err)
	}

	var v any
	if err := json5.Unmarshal(data, &v); err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "invalid checks JSON5: %v", err)
	}

	return htmlcheck.CheckListFromValue(v)
}
