// Copyright © 2024 The ELPS authors

package profiler_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luthersystems/lists/profiler"
)

func TestNewCallgrind(t *testing.T) {
	env := newEnv(t)
	var buf bytes.Buffer
	p := profiler.NewCallgrindProfiler(env.Runtime, &buf)
	require.NoError(t, p.Enable())
	runSource(t, env)
	require.NoError(t, p.Complete())

	out := buf.String()
	assert.Contains(t, out, "version: 1\n")
	assert.Contains(t, out, "events: Time_(ns) Memory_(bytes)")
	assert.Contains(t, out, "fn=(")
	assert.Contains(t, out, "add-it\n")
	assert.Contains(t, out, "cfn=")
	assert.Contains(t, out, "ENTRYPOINT")
	assert.Contains(t, out, "summary ")
}

func TestCallgrindNoOutput(t *testing.T) {
	env := newEnv(t)
	p := profiler.NewCallgrindProfiler(env.Runtime, nil)
	assert.Error(t, p.Enable())
}
