// Copyright © 2024 The ELPS authors

package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned when an operation needs at least one
	// element.
	ErrEmptySequence = errors.New("empty sequence")
	// ErrIndexOutOfRange is returned when an index is negative or not less
	// than the length of the sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when a required element is not present.
	ErrNotFound = errors.New("element not found")
	// ErrInvalidArgument is returned when a numeric argument violates a
	// precondition.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error records the operation which failed along with the failure kind.  Err
// is always one of the package sentinels.
type Error struct {
	Op     string
	Err    error
	Detail string
}

func newError(op string, err error, format string, v ...interface{}) *Error {
	e := &Error{Op: op, Err: err}
	if format != "" {
		e.Detail = fmt.Sprintf(format, v...)
	}
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
}

// Unwrap returns the sentinel describing the failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// Condition returns a short kebab-case name for the failure kind, suitable
// for use as an error condition in an embedding language.
func (e *Error) Condition() string {
	return Condition(e.Err)
}

// Condition maps err to the condition name of the sentinel it wraps.  An
// empty string is returned for errors which do not originate in this
// package.
func Condition(err error) string {
	switch {
	case errors.Is(err, ErrEmptySequence):
		return "empty-sequence"
	case errors.Is(err, ErrIndexOutOfRange):
		return "index-out-of-range"
	case errors.Is(err, ErrNotFound):
		return "not-found"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid-argument"
	default:
		return ""
	}
}
