package pretty_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/pretty"
	"github.com/stretchr/testify/assert"
)

func TestFormatTable(t *testing.T) {
	t.Parallel()

	t.Run("renders a row per selector in order", func(t *testing.T) {
		t.Parallel()

		var r htmlcheck.Result
		r.Set("div#a", true)
		r.Set("p", false)

		out := pretty.FormatTable(&r)

		lines := strings.Split(out, "\n")
		var divLine, pLine int
		for i, line := range lines {
			if strings.Contains(line, "div#a") {
				divLine = i
			}
			if strings.Contains(line, " p ") {
				pLine = i
			}
		}
		assert.NotZero(t, divLine)
		assert.Greater(t, pLine, divLine)
		assert.Contains(t, lines[divLine], "true")
		assert.Contains(t, lines[pLine], "false")
		assert.Contains(t, out, "1/2")
	})

	t.Run("renders empty result", func(t *testing.T) {
		t.Parallel()

		out := pretty.FormatTable(&htmlcheck.Result{})

		assert.Contains(t, out, "0/0")
	})

	t.Run("renders nil result", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, pretty.FormatTable(nil), "0/0")
	})
}
