package main

import (
	"fmt"

	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/pretty"
)

// Run executes the check and writes the formatted result to stdout.
// Nothing is written to stdout when the check fails.
func (c *CheckCmd) Run(deps *Dependencies) error {
	result, err := deps.Checker.Check(deps.Ctx, c.Source, c.ChecksPath)
	if err != nil {
		return err
	}

	var out string
	switch c.Format {
	case "table":
		out = pretty.FormatTable(result)
	default:
		out, err = htmlcheck.FormatJSON(result)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
