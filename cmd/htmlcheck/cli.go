package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/check"
)

// DefaultHTMLFile is checked when neither --file nor --url is given.
const DefaultHTMLFile = "index.html"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Checker *check.Checker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Checks     string        `short:"c" default:"checks.json" env:"HTMLCHECK_CHECKS" help:"Path to checks file (.json or .json5)"`
	File       string        `short:"f" help:"Path to HTML file (default: index.html)"`
	URL        string        `short:"u" name:"url" help:"URL to fetch instead of a file"`
	Render     bool          `help:"Render the URL in headless Chrome before checking"`
	Format     string        `short:"o" enum:"json,table" default:"json" help:"Output format (json, table)"`
	Timeout    time.Duration `short:"t" default:"10s" help:"Fetch timeout per request"`
	Retries    int           `default:"1" help:"Retries after a failed fetch"`
	RetryDelay time.Duration `default:"5s" help:"Delay between fetch attempts"`
	Verbose    bool          `short:"v" help:"Log each step to stderr"`
}

// Source returns the HTML source selected by the flags. --file and --url
// are mutually exclusive; with neither, DefaultHTMLFile is used.
func (c *CLI) Source() (htmlcheck.Source, error) {
	if c.URL != "" && c.File != "" {
		return htmlcheck.Source{}, htmlcheck.Errorf(htmlcheck.EINVALID, "--file and --url are mutually exclusive")
	}
	if c.URL != "" {
		return htmlcheck.URLSource(c.URL), nil
	}
	if c.Render {
		return htmlcheck.Source{}, htmlcheck.Errorf(htmlcheck.EINVALID, "--render requires --url")
	}
	if c.File == "" {
		return htmlcheck.FileSource(DefaultHTMLFile), nil
	}
	return htmlcheck.FileSource(c.File), nil
}

// CheckCmd checks one source against a checks file.
type CheckCmd struct {
	Source     htmlcheck.Source
	ChecksPath string
	Format     string
}
