// Package goquery implements htmlcheck.Parser on top of goquery, compiling
// selectors with cascadia so that invalid selectors are reported rather
// than silently matching nothing.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/htmlcheck"
)

// Ensure Parser implements htmlcheck.Parser at compile time.
var _ htmlcheck.Parser = (*Parser)(nil)

// Parser parses HTML into goquery documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html. The HTML5 parsing algorithm recovers from malformed
// markup, so only a failure to read the input is reported.
func (p *Parser) Parse(html string) (htmlcheck.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Ensure Document implements htmlcheck.Document at compile time.
var _ htmlcheck.Document = (*Document)(nil)

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// Count returns the number of elements matching sel.
func (d *Document) Count(sel htmlcheck.Selector) (int, error) {
	// goquery's Find treats an invalid selector as matching nothing.
	m, err := cascadia.Compile(string(sel))
	if err != nil {
		return 0, htmlcheck.Errorf(htmlcheck.ESELECTOR, "invalid selector %q: %v", sel, err)
	}
	return d.doc.FindMatcher(m).Length(), nil
}
