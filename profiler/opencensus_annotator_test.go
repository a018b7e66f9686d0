// Copyright © 2024 The ELPS authors

package profiler_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/trace"

	"github.com/luthersystems/lists/profiler"
)

// recordingExporter collects the names of exported spans.
type recordingExporter struct {
	mu    sync.Mutex
	names []string
}

func (e *recordingExporter) ExportSpan(sd *trace.SpanData) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.names = append(e.names, sd.Name)
}

func TestNewOpenCensusAnnotator(t *testing.T) {
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})
	exporter := new(recordingExporter)
	trace.RegisterExporter(exporter)
	t.Cleanup(func() { trace.UnregisterExporter(exporter) })

	env := newEnv(t)
	ppa := profiler.NewOpenCensusAnnotator(env.Runtime, context.Background())
	require.NoError(t, ppa.Enable())
	runSource(t, env)
	assert.NoError(t, ppa.Complete())

	exporter.mu.Lock()
	defer exporter.mu.Unlock()
	assert.Contains(t, exporter.names, "add-it")
	assert.Contains(t, exporter.names, "recurse-it")
	assert.Contains(t, exporter.names, "<")
}
