// Copyright © 2024 The ELPS authors

package docs_test

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luthersystems/lists/docs"
	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/seqtest"
)

// Every example program evaluates to true.
func TestExamples(t *testing.T) {
	paths, err := fs.Glob(docs.Examples, "examples/*.lisp")
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, path := range paths {
		path := path
		t.Run(path, func(t *testing.T) {
			env, err := seqtest.NewEnv(&bytes.Buffer{})
			require.NoError(t, err)
			f, err := docs.Examples.Open(path)
			require.NoError(t, err)
			defer f.Close() //nolint:errcheck // embedded file
			v := env.Load(path, f)
			require.NotEqual(t, lang.TError, v.Type, v.String())
			assert.Equal(t, "true", v.String())
		})
	}
}

func TestLangGuide(t *testing.T) {
	assert.Contains(t, docs.LangGuide, "# The lists language")
}
