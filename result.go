package htmlcheck

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ResultEntry is the outcome of checking a single selector.
type ResultEntry struct {
	Selector Selector
	Present  bool
}

// Result maps each checked selector to whether at least one element matched.
// Entries keep the order in which they were first set.
type Result struct {
	entries []ResultEntry
	index   map[Selector]int
}

// Set records whether sel is present. Setting a selector again overwrites
// its value in place without changing its position.
func (r *Result) Set(sel Selector, present bool) {
	if r.index == nil {
		r.index = make(map[Selector]int)
	}
	if i, ok := r.index[sel]; ok {
		r.entries[i].Present = present
		return
	}
	r.index[sel] = len(r.entries)
	r.entries = append(r.entries, ResultEntry{Selector: sel, Present: present})
}

// Present reports whether sel matched. ok is false if sel was not checked.
func (r *Result) Present(sel Selector) (present, ok bool) {
	i, ok := r.index[sel]
	if !ok {
		return false, false
	}
	return r.entries[i].Present, true
}

// Len returns the number of distinct selectors checked.
func (r *Result) Len() int {
	return len(r.entries)
}

// Selectors returns the checked selectors in entry order.
func (r *Result) Selectors() []Selector {
	sels := make([]Selector, len(r.entries))
	for i, e := range r.entries {
		sels[i] = e.Selector
	}
	return sels
}

// Entries returns a copy of the entries in order.
func (r *Result) Entries() []ResultEntry {
	entries := make([]ResultEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// MarshalJSON encodes the result as a JSON object with keys in entry order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalString(string(e.Selector))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatBool(e.Present))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalString encodes s as a JSON string without escaping HTML characters,
// so selectors such as "ul > li" round-trip as written.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Evaluate checks every selector in checks against doc.
//
// Selectors are evaluated in sorted order so the result does not depend on
// the order of the checks file. Duplicate selectors collapse into a single
// entry. The first selector the document rejects aborts the evaluation and
// its error is returned unchanged.
func Evaluate(doc Document, checks CheckList) (*Result, error) {
	result := &Result{}
	for _, sel := range checks.Sorted() {
		n, err := doc.Count(sel)
		if err != nil {
			return nil, err
		}
		result.Set(sel, n > 0)
	}
	return result, nil
}
