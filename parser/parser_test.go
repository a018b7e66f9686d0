// Copyright © 2024 The ELPS authors

package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/parser"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"int", "42", []string{"42"}},
		{"negative", "-7", []string{"-7"}},
		{"float", "1.5", []string{"1.5"}},
		{"exponent", "2e3", []string{"2000"}},
		{"string", `"hello world"`, []string{`"hello world"`}},
		{"escaped string", `"a\"b"`, []string{`"a\"b"`}},
		{"symbol", "delete-first", []string{"delete-first"}},
		{"operator symbol", "-", []string{"-"}},
		{"predicate symbol", "sublist?", []string{"sublist?"}},
		{"bool", "true false", []string{"true", "false"}},
		{"call", "(+ 1 2)", []string{"(+ 1 2)"}},
		{"empty call", "()", []string{"()"}},
		{"vector", "[1 2 3]", []string{"(list 1 2 3)"}},
		{"empty vector", "[]", []string{"(list)"}},
		{"quote", "'x", []string{"(quote x)"}},
		{"quoted call", "'(a b)", []string{"(quote (a b))"}},
		{"nested", "(map inc [1 [2]])", []string{"(map inc (list 1 (list 2)))"}},
		{"comments", "; leading\n(f 1) ; trailing\n; done", []string{"(f 1)"}},
		{"several", "1\n2\n  (g)", []string{"1", "2", "(g)"}},
		{"empty", "  \n", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			vals, err := parser.ParseString(test.source)
			require.NoError(t, err)
			var got []string
			for _, v := range vals {
				got = append(got, v.String())
			}
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseTypes(t *testing.T) {
	vals, err := parser.ParseString(`1 1.0 "s" s true [1] (f)`)
	require.NoError(t, err)
	var types []lang.Type
	for _, v := range vals {
		types = append(types, v.Type)
	}
	assert.Equal(t, []lang.Type{
		lang.TInt, lang.TFloat, lang.TString, lang.TSymbol, lang.TBool, lang.TSExpr, lang.TSExpr,
	}, types)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		msg        string
		incomplete bool
	}{
		{"unmatched paren", "(+ 1 2", `unmatched "("`, true},
		{"unmatched bracket", "[1 2", `unmatched "["`, true},
		{"nested unmatched", "(map inc [1 2", `unmatched "["`, true},
		{"stray close", "(f) )", "unexpected source text", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parser.ParseString(test.source)
			require.Error(t, err)
			var serr *parser.SyntaxError
			require.True(t, errors.As(err, &serr))
			assert.Contains(t, serr.Msg, test.msg)
			assert.Equal(t, test.incomplete, serr.Incomplete)
		})
	}
}

func TestReader(t *testing.T) {
	r := parser.NewReader()
	vals, err := r.Read("test", strings.NewReader("(first [1 2])"))
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, lang.TSExpr, vals[0].Type)

	_, err = r.Read("broken.lisp", strings.NewReader("(first"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "broken.lisp:"))
	var serr *parser.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "broken.lisp", serr.File)
}

func TestReaderEval(t *testing.T) {
	env := lang.NewEnv(nil)
	lerr := lang.InitializeUserEnv(env, lang.WithReader(parser.NewReader()))
	require.NotEqual(t, lang.TError, lerr.Type)
	v := env.LoadString("test", `
		; the last element
		(define xs [3 1 2])
		(last (insertion-sort xs))`)
	assert.Equal(t, "3", v.String())

	v = env.LoadString("broken.lisp", "(first [1 2]")
	require.Equal(t, lang.TError, v.Type)
	var serr *parser.SyntaxError
	require.True(t, errors.As(lang.GoError(v), &serr))
	assert.Equal(t, "broken.lisp", serr.File)
}
