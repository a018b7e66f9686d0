// Copyright © 2024 The ELPS authors

package profiler

import (
	"context"
	"errors"

	"github.com/golang-collections/collections/stack"
	"go.opencensus.io/trace"

	"github.com/luthersystems/lists/lang"
)

var _ lang.Profiler = &ocAnnotator{}

type ocAnnotator struct {
	profiler
	currentContext context.Context
	currentSpan    *trace.Span
	contexts       *stack.Stack
}

// NewOpenCensusAnnotator returns a profiler which starts an OpenCensus span
// for each function call.
func NewOpenCensusAnnotator(runtime *lang.Runtime, parentContext context.Context, opts ...Option) lang.Profiler {
	p := &ocAnnotator{
		profiler: profiler{
			runtime: runtime,
		},
		currentContext: parentContext,
		contexts:       stack.New(),
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *ocAnnotator) Enable() error {
	p.runtime.Profiler = p
	if p.currentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opencensus")
	}
	return p.profiler.Enable()
}

func (p *ocAnnotator) Complete() error {
	if p.currentSpan != nil {
		p.currentSpan.End()
	}
	return nil
}

func (p *ocAnnotator) Start(fun *lang.Value) func() {
	if p.skipTrace(fun) {
		return func() {}
	}
	prettyLabel, funName := p.prettyFunName(fun)
	p.contexts.Push(p.currentContext)
	p.currentContext, p.currentSpan = trace.StartSpan(p.currentContext, prettyLabel)
	p.currentSpan.AddAttributes(
		trace.StringAttribute("code.namespace", Namespace(fun)),
		trace.StringAttribute("code.function", funName),
	)
	return func() {
		p.currentSpan.Annotate([]trace.Attribute{
			trace.Int64Attribute("depth", int64(p.runtime.Depth())),
		}, "return")
		p.currentSpan.End()
		// And pop the current context back
		p.currentContext = p.contexts.Pop().(context.Context)
		p.currentSpan = trace.FromContext(p.currentContext)
	}
}
