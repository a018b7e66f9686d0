// Copyright © 2018 The ELPS authors

package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/parser"
)

func TestSymbolCompleter(t *testing.T) {
	env := lang.NewEnv(nil)
	rc := lang.InitializeUserEnv(env, lang.WithReader(parser.NewReader()))
	require.NotEqual(t, lang.TError, rc.Type)
	rc = env.LoadString("test", "(define delta 3)")
	require.NotEqual(t, lang.TError, rc.Type)

	c := &symbolCompleter{env: env}

	// "de" matches define and delete-* builtins as well as the user binding.
	candidates, offset := c.Do([]rune("(de"), 3)
	assert.Equal(t, 2, offset)
	var got []string
	for _, cand := range candidates {
		got = append(got, "de"+string(cand))
	}
	assert.Equal(t, []string{"define", "delete-all", "delete-first", "delta"}, got)

	candidates, offset = c.Do([]rune("(map in"), 7)
	assert.Equal(t, 2, offset)
	assert.Contains(t, candidates, []rune("c"))
	assert.Contains(t, candidates, []rune("sertion-sort"))

	candidates, _ = c.Do([]rune("(zzz-nonexistent"), 16)
	assert.Empty(t, candidates)

	candidates, offset = c.Do([]rune("("), 1)
	assert.Empty(t, candidates)
	assert.Equal(t, 0, offset)
}
