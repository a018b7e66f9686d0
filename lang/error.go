// Copyright © 2024 The ELPS authors

package lang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luthersystems/lists/datatype"
	"github.com/luthersystems/lists/seq"
)

// Error conditions raised by the evaluator and the builtins.  Builtins backed
// by package seq raise the condition names reported by seq.Condition.
const (
	CondError            = "error"
	CondTypeError        = "type-error"
	CondArityError       = "arity-error"
	CondUnboundSymbol    = "unbound-symbol"
	CondSyntaxError      = "syntax-error"
	CondStackOverflow    = "stack-overflow"
	CondContextCancelled = "context-cancelled"
	CondInvalidArgument  = "invalid-argument"
)

type errorData struct {
	fun   string
	msg   string
	cause error
}

// Errorf returns an error value with the given condition.
func Errorf(cond string, format string, v ...interface{}) *Value {
	return &Value{
		Type:   TError,
		Str:    cond,
		Native: &errorData{msg: fmt.Sprintf(format, v...)},
	}
}

// errorWithCause returns an error value with the given condition which
// unwraps to err.
func errorWithCause(cond string, err error) *Value {
	return &Value{
		Type:   TError,
		Str:    cond,
		Native: &errorData{msg: err.Error(), cause: err},
	}
}

// ErrorFromGo converts err into an error value.  Errors from packages seq and
// datatype keep their condition and the name of the failing operation.
func ErrorFromGo(err error) *Value {
	var lerr *ErrorVal
	if errors.As(err, &lerr) {
		return (*Value)(lerr)
	}
	data := &errorData{msg: err.Error(), cause: err}
	cond := CondError
	var serr *seq.Error
	var verr *datatype.ValidationError
	switch {
	case errors.As(err, &serr):
		cond = serr.Condition()
		data.fun = serr.Op
		data.msg = serr.Detail
	case errors.As(err, &verr):
		cond = CondInvalidArgument
		data.fun = verr.Type
		data.msg = fmt.Sprintf("%s %#v", verr.Field, verr.Value)
	}
	return &Value{Type: TError, Str: cond, Native: data}
}

// GoError returns v as a Go error when v is an error value and nil otherwise.
func GoError(v *Value) error {
	if v == nil || v.Type != TError {
		return nil
	}
	return (*ErrorVal)(v)
}

// withFun returns a copy of the error value v attributed to the function
// name, unless v already names a function.
func withFun(v *Value, name string) *Value {
	data, _ := v.Native.(*errorData)
	if data == nil || data.fun != "" || name == "" {
		return v
	}
	cp := *v
	cp.Native = &errorData{fun: name, msg: data.msg, cause: data.cause}
	return &cp
}

// ErrorVal implements the error interface for error values.
type ErrorVal Value

// Error implements the error interface.  The message is formed from the name
// of the function that raised the error, the condition (unless it is the
// generic "error") and the message text.
func (e *ErrorVal) Error() string {
	parts := make([]string, 0, 3)
	if fun := e.FunName(); fun != "" {
		parts = append(parts, fun)
	}
	if e.Str != CondError {
		parts = append(parts, e.Str)
	}
	if msg := e.Message(); msg != "" {
		parts = append(parts, msg)
	}
	return strings.Join(parts, ": ")
}

// Condition returns the error condition name, e.g. "type-error".
func (e *ErrorVal) Condition() string {
	return e.Str
}

// FunName returns the name of the function which raised the error.
func (e *ErrorVal) FunName() string {
	if data, ok := e.Native.(*errorData); ok {
		return data.fun
	}
	return ""
}

// Message returns the error text without function name or condition.
func (e *ErrorVal) Message() string {
	if data, ok := e.Native.(*errorData); ok {
		return data.msg
	}
	return ""
}

// Unwrap returns the Go error the value was created from, if any.
func (e *ErrorVal) Unwrap() error {
	if data, ok := e.Native.(*errorData); ok {
		return data.cause
	}
	return nil
}
