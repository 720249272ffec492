// Package pretty renders check results as human-readable tables using
// go-pretty.
package pretty

import (
	"fmt"

	"github.com/fwojciec/htmlcheck"
	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatTable renders r as a table with one row per selector in entry
// order, followed by a footer counting the selectors that were present.
func FormatTable(r *htmlcheck.Result) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Selector", "Present"})

	var present int
	var entries []htmlcheck.ResultEntry
	if r != nil {
		entries = r.Entries()
	}
	for _, e := range entries {
		if e.Present {
			present++
		}
		t.AppendRow(table.Row{string(e.Selector), e.Present})
	}

	t.AppendFooter(table.Row{"Total", fmt.Sprintf("%d/%d", present, len(entries))})
	return t.Render()
}
