// Copyright © 2024 The ELPS authors

package lang

// Profiler observes function calls made by an environment.
type Profiler interface {
	// Enable installs the profiler in its runtime.
	Enable() error
	// Start marks the beginning of a call to fun.  The returned function
	// marks its end.
	Start(fun *Value) func()
	// Complete ends the profiling session.
	Complete() error
}
