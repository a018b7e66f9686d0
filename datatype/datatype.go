// Copyright © 2024 The ELPS authors

// Package datatype contains small immutable record types whose constructors
// validate their input.  A value which fails validation is never produced;
// the constructor returns an error wrapping ErrInvalidArgument instead.
package datatype

import (
	"fmt"

	"github.com/luthersystems/lists/seq"
)

// ErrInvalidArgument is wrapped by every validation failure in this package.
// It is the same sentinel the sequence functions report.
var ErrInvalidArgument = seq.ErrInvalidArgument

// ValidationError describes a rejected constructor argument.
type ValidationError struct {
	Type  string
	Field string
	Value interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v: %s %#v", e.Type, ErrInvalidArgument, e.Field, e.Value)
}

// Unwrap returns ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(typ, field string, v interface{}) error {
	return &ValidationError{Type: typ, Field: field, Value: v}
}
