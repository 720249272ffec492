// Package check runs a single check: it resolves the HTML source, parses it,
// loads the checks file and evaluates every selector.
package check

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmlcheck"
)

// LoadFunc decodes a checks file.
type LoadFunc func(r io.Reader) (htmlcheck.CheckList, error)

// Checker wires the collaborators needed to check a source.
type Checker struct {
	FileSystem htmlcheck.FileSystem
	Parser     htmlcheck.Parser

	// Fetcher retrieves URL sources. May be nil when only files are checked.
	Fetcher htmlcheck.Fetcher

	// Loaders maps a lowercase file extension (e.g. ".json5") to the
	// decoder for checks files with that extension. Files with any other
	// extension are decoded with htmlcheck.LoadChecks.
	Loaders map[string]LoadFunc
}

// Check evaluates the checks at checksPath against the HTML at src.
//
// Local files named by the check must exist before anything is read or
// fetched, so a missing file fails before any network request. Any failure
// aborts the check and no partial result is returned.
func (c *Checker) Check(ctx context.Context, src htmlcheck.Source, checksPath string) (*htmlcheck.Result, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if checksPath == "" {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "checks file path required")
	}

	if err := c.assertExists(checksPath); err != nil {
		return nil, err
	}
	if src.Kind == htmlcheck.SourceFile {
		if err := c.assertExists(src.Location); err != nil {
			return nil, err
		}
	}

	data, err := c.FileSystem.ReadFile(checksPath)
	if err != nil {
		return nil, err
	}

	html, err := c.resolve(ctx, src)
	if err != nil {
		return nil, err
	}

	doc, err := c.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	checks, err := c.loader(checksPath)(bytes.NewReader(data))
	if err != nil {
		if htmlcheck.ErrorCode(err) == htmlcheck.EINTERNAL {
			return nil, fmt.Errorf("%s: %w", checksPath, err)
		}
		return nil, htmlcheck.Errorf(htmlcheck.ErrorCode(err), "%s: %s", checksPath, htmlcheck.ErrorMessage(err))
	}

	return htmlcheck.Evaluate(doc, checks)
}

func (c *Checker) assertExists(path string) error {
	if !c.FileSystem.Exists(path) {
		return htmlcheck.Errorf(htmlcheck.ENOTFOUND, "%s does not exist", path)
	}
	return nil
}

// resolve returns the raw HTML for src.
func (c *Checker) resolve(ctx context.Context, src htmlcheck.Source) (string, error) {
	switch src.Kind {
	case htmlcheck.SourceURL:
		if c.Fetcher == nil {
			return "", htmlcheck.Errorf(htmlcheck.EINVALID, "no fetcher configured for %s", src)
		}
		return c.Fetcher.Fetch(ctx, src.Location)
	default:
		data, err := c.FileSystem.ReadFile(src.Location)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func (c *Checker) loader(path string) LoadFunc {
	if fn, ok := c.Loaders[strings.ToLower(filepath.Ext(path))]; ok {
		return fn
	}
	return htmlcheck.LoadChecks
}
