// Copyright © 2024 The ELPS authors

package seqtest_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/seqtest"
)

func TestRunTestSuite(t *testing.T) {
	seqtest.RunTestSuite(t, seqtest.TestSuite{
		{"define and use", seqtest.TestSequence{
			{`(define xs [1 2 3])`, `xs`, ""},
			{`(reverse xs)`, `[3 2 1]`, ""},
			{`(print "hello" xs)`, `[]`, "hello [1 2 3]\n"},
		}},
	})
}

func TestNewEnv(t *testing.T) {
	var buf bytes.Buffer
	env, err := seqtest.NewEnv(&buf)
	require.NoError(t, err)
	assert.Equal(t, seqtest.MaxDepth, env.Runtime.MaxDepth)
	assert.NotNil(t, env.Runtime.Reader)

	_, err = seqtest.NewEnv(&buf, lang.WithMaxDepth(0))
	assert.Error(t, err)
}

func BenchmarkSort(b *testing.B) {
	seqtest.RunBenchmark(b, `(insertion-sort [9 8 7 6 5 4 3 2 1 0])`)
}
