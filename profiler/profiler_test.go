// Copyright © 2024 The ELPS authors

package profiler_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/seqtest"
)

const testSource = `
(define add-it (lambda (x y) (+ x y)))
(define recurse-it (lambda (x) (if (< x 4) (add-it x 3) (recurse-it (- x 1)))))
(add-it (add-it 3 (recurse-it 5)) 8)`

// newEnv returns an initialized environment without a profiler.
func newEnv(t *testing.T) *lang.Env {
	env, err := seqtest.NewEnv(&bytes.Buffer{})
	require.NoError(t, err)
	return env
}

func runSource(t *testing.T, env *lang.Env) {
	v := env.LoadString("test.lisp", testSource)
	require.NotEqual(t, lang.TError, v.Type, v.String())
	require.Equal(t, "17", v.String())
}
