// Copyright © 2024 The ELPS authors

package profiler

import (
	"context"
	"runtime/pprof"

	"github.com/luthersystems/lists/lang"
)

// pprofAnnotator labels the running goroutine with the function being
// evaluated so that CPU profiles can be broken down by function.  Starting
// the CPU profile is left to the caller.
type pprofAnnotator struct {
	profiler
	currentContext context.Context
}

var _ lang.Profiler = &pprofAnnotator{}

// NewPprofAnnotator returns a profiler which applies pprof labels.
func NewPprofAnnotator(runtime *lang.Runtime, parentContext context.Context, opts ...Option) lang.Profiler {
	p := &pprofAnnotator{
		profiler: profiler{
			runtime: runtime,
		},
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *pprofAnnotator) Enable() error {
	p.runtime.Profiler = p
	if p.currentContext == nil {
		p.currentContext = context.Background()
	}
	return p.profiler.Enable()
}

func (p *pprofAnnotator) Complete() error {
	pprof.SetGoroutineLabels(context.Background())
	return nil
}

func (p *pprofAnnotator) Start(fun *lang.Value) func() {
	if p.skipTrace(fun) {
		return func() {}
	}
	oldContext := p.currentContext
	prettyLabel, _ := p.prettyFunName(fun)
	p.currentContext = pprof.WithLabels(p.currentContext, pprof.Labels("function", prettyLabel))
	pprof.SetGoroutineLabels(p.currentContext)
	return func() {
		p.currentContext = oldContext
		pprof.SetGoroutineLabels(p.currentContext)
	}
}

// Labels returns the pprof labels currently applied.
func (p *pprofAnnotator) Labels() map[string]string {
	labels := make(map[string]string)
	pprof.ForLabels(p.currentContext, func(key, value string) bool {
		labels[key] = value
		return true
	})
	return labels
}
