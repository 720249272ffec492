package htmlcheck

// Document is a parsed HTML document that can be queried with selectors.
type Document interface {
	// Count returns the number of elements matching sel.
	// An invalid selector returns ESELECTOR.
	Count(sel Selector) (int, error)
}

// Parser turns raw HTML into a queryable Document.
type Parser interface {
	Parse(html string) (Document, error)
}
