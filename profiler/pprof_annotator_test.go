// Copyright © 2024 The ELPS authors

package profiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/profiler"
)

// labelRecorder is a profiler wrapper which records the pprof labels visible
// when each function starts.
type labelRecorder struct {
	lang.Profiler
	seen []map[string]string
}

func (r *labelRecorder) Start(fun *lang.Value) func() {
	done := r.Profiler.Start(fun)
	r.seen = append(r.seen, r.Profiler.(interface{ Labels() map[string]string }).Labels())
	return done
}

func TestNewPprofAnnotator(t *testing.T) {
	env := newEnv(t)
	ppa := profiler.NewPprofAnnotator(env.Runtime, nil)
	require.NoError(t, ppa.Enable())
	rec := &labelRecorder{Profiler: ppa}
	env.Runtime.Profiler = rec
	v := env.LoadString("test.lisp", `(reverse [1 2])`)
	assert.Equal(t, "[2 1]", v.String())
	assert.NoError(t, ppa.Complete())

	require.Len(t, rec.seen, 2)
	assert.Equal(t, map[string]string{"function": "list"}, rec.seen[0])
	assert.Equal(t, map[string]string{"function": "reverse"}, rec.seen[1])
}
