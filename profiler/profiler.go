// Copyright © 2024 The ELPS authors

// Package profiler contains lang.Profiler implementations which annotate
// function calls for tracing and profiling tools.
package profiler

import (
	"fmt"

	"github.com/luthersystems/lists/lang"
)

// profiler is a minimal lang.Profiler
type profiler struct {
	runtime    *lang.Runtime
	enabled    bool
	skipFilter SkipFilter
	funLabeler FunLabeler
}

var _ lang.Profiler = &profiler{}

// Option configures an annotator.
type Option func(*profiler)

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) Enable() error {
	if p.enabled {
		return fmt.Errorf("profiler already enabled")
	}
	p.enabled = true
	return nil
}

func (p *profiler) Start(fun *lang.Value) func() {
	return func() {}
}

func (p *profiler) Complete() error {
	return nil
}

// Namespace returns the code namespace of fun: "builtin" for functions
// implemented in Go and "user" for lambdas.
func Namespace(fun *lang.Value) string {
	if fun.Fun.Builtin != nil {
		return "builtin"
	}
	return "user"
}

func defaultFunName(fun *lang.Value) string {
	if fun.Type != lang.TFun || fun.Fun == nil {
		return ""
	}
	if fun.Fun.Name == "" {
		return "lambda"
	}
	return fun.Fun.Name
}

// prettyFunName returns a display label and the function name for fun.  The
// label comes from the configured FunLabeler and defaults to the name.
func (p *profiler) prettyFunName(fun *lang.Value) (string, string) {
	origLabel := defaultFunName(fun)
	if origLabel == "" {
		return "", ""
	}
	prettyLabel := origLabel
	if p.funLabeler != nil {
		prettyLabel = p.funLabeler(fun)
	}
	if prettyLabel == "" {
		prettyLabel = origLabel
	}
	return prettyLabel, origLabel
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *profiler) skipTrace(v *lang.Value) bool {
	return !p.enabled || defaultSkipFilter(v) || p.skipFilter != nil && p.skipFilter(v)
}
