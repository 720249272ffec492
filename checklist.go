package htmlcheck

import (
	"encoding/json"
	"io"
	"slices"
)

// Selector is a CSS selector query. Two selectors are the same check only
// when their strings are identical.
type Selector string

// CheckList is the ordered list of selectors loaded from a checks file.
// Duplicates are kept as written; they collapse when evaluated.
type CheckList []Selector

// Sorted returns a lexicographically sorted copy of the list.
func (l CheckList) Sorted() CheckList {
	sorted := slices.Clone(l)
	slices.Sort(sorted)
	return sorted
}

// LoadChecks reads a JSON array of selector strings from r.
//
// Content that is not valid JSON returns EPARSE. Valid JSON that is not an
// array of non-empty strings returns ESCHEMA.
func LoadChecks(r io.Reader) (CheckList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Errorf(EINTERNAL, "reading checks: %v", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, Errorf(EPARSE, "invalid checks JSON: %v", err)
	}

	return CheckListFromValue(v)
}

// CheckListFromValue validates a decoded JSON value against the checks
// schema: an array whose entries are all non-empty strings.
func CheckListFromValue(v any) (CheckList, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, Errorf(ESCHEMA, "checks must be an array of selector strings, got %s", jsonKind(v))
	}

	checks := make(CheckList, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, Errorf(ESCHEMA, "check %d must be a string, got %s", i, jsonKind(item))
		}
		if s == "" {
			return nil, Errorf(ESCHEMA, "check %d is an empty selector", i)
		}
		checks = append(checks, Selector(s))
	}
	return checks, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
