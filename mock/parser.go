package mock

import "github.com/fwojciec/htmlcheck"

var _ htmlcheck.Parser = (*Parser)(nil)

// Parser is a mock implementation of htmlcheck.Parser.
type Parser struct {
	ParseFn func(html string) (htmlcheck.Document, error)
}

func (p *Parser) Parse(html string) (htmlcheck.Document, error) {
	return p.ParseFn(html)
}

var _ htmlcheck.Document = (*Document)(nil)

// Document is a mock implementation of htmlcheck.Document.
type Document struct {
	CountFn func(sel htmlcheck.Selector) (int, error)
}

func (d *Document) Count(sel htmlcheck.Selector) (int, error) {
	return d.CountFn(sel)
}
