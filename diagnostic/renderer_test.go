// Copyright © 2024 The ELPS authors

package diagnostic

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRenderer returns a Renderer with colors disabled and a fake source reader.
func testRenderer(sources map[string]string) *Renderer {
	return &Renderer{
		Color: ColorNever,
		SourceReader: func(name string) ([]byte, error) {
			s, ok := sources[name]
			if !ok {
				return nil, errors.New("not found: " + name)
			}
			return []byte(s), nil
		},
	}
}

func render(t *testing.T, r *Renderer, rep Report) string {
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, rep))
	return buf.String()
}

func TestRenderLocated(t *testing.T) {
	r := testRenderer(map[string]string{
		"test.lisp": "(define xs [1 2])\r\n(first [1 2]",
	})
	got := render(t, r, Report{
		Code:    "syntax-error",
		Message: `unmatched "("`,
		File:    "test.lisp",
		Line:    2,
	})
	assert.Equal(t, "error[syntax-error]: unmatched \"(\"\n"+
		"  --> test.lisp:2\n"+
		"   |\n"+
		" 2 |  (first [1 2]\n"+
		"   |\n", got)
}

func TestRenderFileOnly(t *testing.T) {
	got := render(t, testRenderer(nil), Report{Message: "cannot read", File: "missing.lisp"})
	assert.Equal(t, "error: cannot read\n  --> missing.lisp\n", got)
}

func TestRenderNoSource(t *testing.T) {
	got := render(t, testRenderer(nil), Report{Message: "some error", File: "<stdin>", Line: 12})
	assert.Equal(t, "error: some error\n  --> <stdin>:12\n    |\n", got)
}

func TestRenderLinePastEnd(t *testing.T) {
	r := testRenderer(map[string]string{"short.lisp": "(+ 1 2)"})
	got := render(t, r, Report{Message: "boom", File: "short.lisp", Line: 3})
	assert.Equal(t, "error: boom\n  --> short.lisp:3\n   |\n", got)
}

func TestRenderTabs(t *testing.T) {
	r := testRenderer(map[string]string{"test.lisp": "\t(f x)"})
	got := render(t, r, Report{Message: "unbound", File: "test.lisp", Line: 1})
	assert.Contains(t, got, " 1 |      (f x)\n")
}

func TestRenderNotes(t *testing.T) {
	got := render(t, testRenderer(nil), Report{
		Code:    "unbound-symbol",
		Message: "frobnicate",
		Notes:   []string{"run `lists doc -l` to list the builtins", "called from map"},
	})
	assert.Equal(t, "error[unbound-symbol]: frobnicate\n"+
		"   = note: run `lists doc -l` to list the builtins\n"+
		"   = note: called from map\n", got)
}

func TestRenderColor(t *testing.T) {
	r := testRenderer(nil)
	r.Color = ColorAlways
	got := render(t, r, Report{Code: "type-error", Message: "boom"})
	assert.Equal(t, "\033[1;31merror[type-error]:\033[0m \033[1mboom\033[0m\n", got)

	r.Color = ColorAuto
	got = render(t, r, Report{Message: "boom"})
	assert.Equal(t, "error: boom\n", got, "a buffer is not a terminal")
}

func TestParseColorMode(t *testing.T) {
	for _, mode := range []ColorMode{ColorAuto, ColorAlways, ColorNever} {
		parsed, err := ParseColorMode(mode.String())
		assert.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	mode, err := ParseColorMode("")
	assert.NoError(t, err)
	assert.Equal(t, ColorAuto, mode)
	_, err = ParseColorMode("sometimes")
	assert.Error(t, err)
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
