// Copyright © 2024 The ELPS authors

package profiler

import "github.com/luthersystems/lists/lang"

// SkipFilter returns true for functions which should not be traced.
type SkipFilter func(fun *lang.Value) bool

func defaultSkipFilter(fun *lang.Value) bool {
	return fun.Type != lang.TFun || fun.Fun == nil
}

// WithSkipFilter sets the filter for tracing spans.
func WithSkipFilter(skipFilter SkipFilter) Option {
	return func(p *profiler) {
		p.skipFilter = skipFilter
	}
}

// WithLambdasOnly skips builtins so that only user defined functions are
// traced.
func WithLambdasOnly() Option {
	return WithSkipFilter(func(fun *lang.Value) bool {
		return fun.Fun.Builtin != nil
	})
}

// WithOnly traces only the functions with the given names.
func WithOnly(names ...string) Option {
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		keep[name] = true
	}
	return WithSkipFilter(func(fun *lang.Value) bool {
		return !keep[defaultFunName(fun)]
	})
}
