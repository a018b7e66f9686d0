// Copyright © 2024 The ELPS authors

package lang

import (
	"context"
	"io"
)

const (
	// DefaultMaxDepth is the call depth limit used when none is configured.
	DefaultMaxDepth = 10000
	// DefaultMaxAlloc is the largest number of elements a single builtin
	// may allocate when none is configured.  The sequence functions recurse
	// once per element, so this also bounds their stack depth.
	DefaultMaxAlloc = 1 << 16
	// MaxAllocCeiling is the largest value WithMaxAlloc accepts.  Recursing
	// over a list this long stays well inside the goroutine stack limit.
	MaxAllocCeiling = 1 << 20
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *Env) *Value

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *Env) *Value {
		env.Runtime.Reader = r
		return Nil()
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *Env) *Value {
		env.Runtime.Stderr = w
		return Nil()
	}
}

// WithMaxDepth returns a Config that prevents the call stack from growing
// beyond n nested function calls.  Deeper calls fail with a stack-overflow
// error.
func WithMaxDepth(n int) Config {
	return func(env *Env) *Value {
		if n <= 0 {
			return Errorf(CondInvalidArgument, "maximum depth must be positive: %d", n)
		}
		env.Runtime.MaxDepth = n
		return Nil()
	}
}

// WithMaxAlloc returns a Config that limits the number of elements a single
// builtin call may allocate, e.g. the count given to replicate.  n must lie
// in 1..MaxAllocCeiling.
func WithMaxAlloc(n int) Config {
	return func(env *Env) *Value {
		if n <= 0 {
			return Errorf(CondInvalidArgument, "maximum allocation must be positive: %d", n)
		}
		if n > MaxAllocCeiling {
			return Errorf(CondInvalidArgument, "maximum allocation %d exceeds ceiling %d", n, MaxAllocCeiling)
		}
		env.Runtime.MaxAlloc = n
		return Nil()
	}
}

// WithProfiler returns a Config that reports each function call to p.
func WithProfiler(p Profiler) Config {
	return func(env *Env) *Value {
		env.Runtime.Profiler = p
		return Nil()
	}
}

// WithContext returns a Config that sets the context checked before each
// function call.  Once ctx is done evaluation returns a context-cancelled
// error.
func WithContext(ctx context.Context) Config {
	return func(env *Env) *Value {
		env.Runtime.ctx = ctx
		return Nil()
	}
}
