package htmlcheck_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fwojciec/htmlcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadChecks(t *testing.T) {
	t.Parallel()

	t.Run("loads selectors in file order", func(t *testing.T) {
		t.Parallel()

		checks, err := htmlcheck.LoadChecks(strings.NewReader(`["title", "div#a", "p"]`))

		require.NoError(t, err)
		assert.Equal(t, htmlcheck.CheckList{"title", "div#a", "p"}, checks)
	})

	t.Run("preserves duplicates", func(t *testing.T) {
		t.Parallel()

		checks, err := htmlcheck.LoadChecks(strings.NewReader(`["div", "div", "p"]`))

		require.NoError(t, err)
		assert.Len(t, checks, 3)
	})

	t.Run("accepts empty array", func(t *testing.T) {
		t.Parallel()

		checks, err := htmlcheck.LoadChecks(strings.NewReader(`[]`))

		require.NoError(t, err)
		assert.Empty(t, checks)
	})

	t.Run("returns EPARSE for malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := htmlcheck.LoadChecks(strings.NewReader(`["div",`))

		require.Error(t, err)
		assert.Equal(t, htmlcheck.EPARSE, htmlcheck.ErrorCode(err))
	})

	t.Run("returns EPARSE for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmlcheck.LoadChecks(strings.NewReader(""))

		assert.Equal(t, htmlcheck.EPARSE, htmlcheck.ErrorCode(err))
	})

	t.Run("returns EPARSE for trailing data", func(t *testing.T) {
		t.Parallel()

		_, err := htmlcheck.LoadChecks(strings.NewReader(`["div"] ["p"]`))

		assert.Equal(t, htmlcheck.EPARSE, htmlcheck.ErrorCode(err))
	})

	t.Run("returns ESCHEMA for object", func(t *testing.T) {
		t.Parallel()

		_, err := htmlcheck.LoadChecks(strings.NewReader(`{"div": true}`))

		require.Error(t, err)
		assert.Equal(t, htmlcheck.ESCHEMA, htmlcheck.ErrorCode(err))
		assert.Contains(t, htmlcheck.ErrorMessage(err), "object")
	})

	t.Run("returns ESCHEMA for null", func(t *testing.T) {
		t.Parallel()

		_, err := htmlcheck.LoadChecks(strings.NewReader(`null`))

		assert.Equal(t, htmlcheck.ESCHEMA, htmlcheck.ErrorCode(err))
	})

	t.Run("returns ESCHEMA naming the non-string entry", func(t *testing.T) {
		t.Parallel()

		_, err := htmlcheck.LoadChecks(strings.NewReader(`["div", 42]`))

		require.Error(t, err)
		assert.Equal(t, htmlcheck.ESCHEMA, htmlcheck.ErrorCode(err))
		assert.Equal(t, "check 1 must be a string, got number", htmlcheck.ErrorMessage(err))
	})

	t.Run("returns ESCHEMA for empty selector", func(t *testing.T) {
		t.Parallel()

		_, err := htmlcheck.LoadChecks(strings.NewReader(`["div", ""]`))

		assert.Equal(t, htmlcheck.ESCHEMA, htmlcheck.ErrorCode(err))
	})

	t.Run("returns EINTERNAL when reader fails", func(t *testing.T) {
		t.Parallel()

		_, err := htmlcheck.LoadChecks(iotest.ErrReader(errors.New("disk gone")))

		assert.Equal(t, htmlcheck.EINTERNAL, htmlcheck.ErrorCode(err))
	})
}

func TestCheckList_Sorted(t *testing.T) {
	t.Parallel()

	checks := htmlcheck.CheckList{"title", "div#a", "p"}

	sorted := checks.Sorted()

	assert.Equal(t, htmlcheck.CheckList{"div#a", "p", "title"}, sorted)
	assert.Equal(t, htmlcheck.CheckList{"title", "div#a", "p"}, checks, "input must not be reordered")
}
