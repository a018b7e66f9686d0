// Copyright © 2024 The ELPS authors

package lang

import (
	"bytes"
	"cmp"
	"fmt"
	"strconv"

	"github.com/luthersystems/lists/seq"
)

// Type identifies the kind of data held by a Value.
type Type uint

const (
	TInvalid Type = iota
	TInt
	TFloat
	TString
	TSymbol
	TBool
	TList
	TSExpr
	TFun
	TNative
	TError
)

var typeNames = []string{
	TInvalid: "invalid",
	TInt:     "int",
	TFloat:   "float",
	TString:  "string",
	TSymbol:  "symbol",
	TBool:    "bool",
	TList:    "list",
	TSExpr:   "sexpr",
	TFun:     "function",
	TNative:  "native",
	TError:   "error",
}

func (t Type) String() string {
	if int(t) >= len(typeNames) {
		return typeNames[TInvalid]
	}
	return typeNames[t]
}

// Value is a language value.  Values are never modified after construction.
type Value struct {
	Type Type
	Int  int64
	// Float holds the value of a TFloat.
	Float float64
	// Str holds string contents, symbol names, native type names and error
	// conditions.
	Str  string
	Bool bool
	// Cells holds list items and call expression elements.
	Cells  []*Value
	Fun    *Function
	Native interface{}
}

// Function is a callable value.  Exactly one of Builtin and Body is set.
type Function struct {
	Name    string
	Formals []string
	// Builtin implements a function in Go.
	Builtin BuiltinFunc
	// MinArgs and MaxArgs bound the number of arguments accepted by a
	// builtin.  MaxArgs < 0 means no upper bound.
	MinArgs int
	MaxArgs int
	// Body and Closure define a lambda.
	Body    []*Value
	Closure *Env
}

// BuiltinFunc is the Go implementation of a builtin.  Arguments have already
// been evaluated.
type BuiltinFunc func(env *Env, args []*Value) *Value

// Int returns an integer value.
func Int(x int64) *Value {
	return &Value{Type: TInt, Int: x}
}

// Float returns a floating point value.
func Float(x float64) *Value {
	return &Value{Type: TFloat, Float: x}
}

// String returns a string value.
func String(s string) *Value {
	return &Value{Type: TString, Str: s}
}

// Symbol returns a symbol.
func Symbol(name string) *Value {
	return &Value{Type: TSymbol, Str: name}
}

// Bool returns a boolean value.
func Bool(b bool) *Value {
	return &Value{Type: TBool, Bool: b}
}

// List returns a list holding cells.
func List(cells []*Value) *Value {
	if cells == nil {
		cells = []*Value{}
	}
	return &Value{Type: TList, Cells: cells}
}

// Nil returns the empty list.
func Nil() *Value {
	return List(nil)
}

// SExpr returns an unevaluated call expression.
func SExpr(cells []*Value) *Value {
	if cells == nil {
		cells = []*Value{}
	}
	return &Value{Type: TSExpr, Cells: cells}
}

// Native wraps a Go value.  The name is used when the value is printed.
func Native(name string, v interface{}) *Value {
	return &Value{Type: TNative, Str: name, Native: v}
}

// IsNil reports whether v is the empty list.
func (v *Value) IsNil() bool {
	return v.Type == TList && len(v.Cells) == 0
}

// IsNumeric reports whether v is an int or a float.
func (v *Value) IsNumeric() bool {
	return v.Type == TInt || v.Type == TFloat
}

func (v *Value) float() float64 {
	if v.Type == TInt {
		return float64(v.Int)
	}
	return v.Float
}

func (v *Value) String() string {
	switch v.Type {
	case TInt:
		return strconv.FormatInt(v.Int, 10)
	case TFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case TString:
		return strconv.Quote(v.Str)
	case TSymbol:
		return v.Str
	case TBool:
		return strconv.FormatBool(v.Bool)
	case TList:
		return formatCells("[", v.Cells, "]")
	case TSExpr:
		return formatCells("(", v.Cells, ")")
	case TFun:
		if v.Fun.Builtin != nil {
			return fmt.Sprintf("#<builtin %s>", v.Fun.Name)
		}
		return formatCells("(lambda (", symbols(v.Fun.Formals), ") ...)")
	case TNative:
		return fmt.Sprintf("#<%s %v>", v.Str, v.Native)
	case TError:
		return (*ErrorVal)(v).Error()
	default:
		return "#<invalid>"
	}
}

func symbols(names []string) []*Value {
	return seq.Map(Symbol, names)
}

func formatCells(open string, cells []*Value, close string) string {
	var buf bytes.Buffer
	buf.WriteString(open)
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(close)
	return buf.String()
}

// Equal reports whether a and b are structurally equal.  Integers and floats
// compare numerically; functions compare by identity.
func Equal(a, b *Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		if a.Type == TInt && b.Type == TInt {
			return a.Int == b.Int
		}
		return a.float() == b.float()
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TString, TSymbol:
		return a.Str == b.Str
	case TBool:
		return a.Bool == b.Bool
	case TList, TSExpr:
		return seq.EqualFunc(a.Cells, b.Cells, Equal)
	case TFun:
		return a.Fun == b.Fun
	case TNative:
		return a.Str == b.Str && a.Native == b.Native
	case TError:
		return a == b
	default:
		return false
	}
}

// Compare orders two numbers or two strings.  Any other combination is a
// type-error.
func Compare(a, b *Value) (int, *Value) {
	switch {
	case a.Type == TInt && b.Type == TInt:
		return cmp.Compare(a.Int, b.Int), nil
	case a.IsNumeric() && b.IsNumeric():
		return cmp.Compare(a.float(), b.float()), nil
	case a.Type == TString && b.Type == TString:
		return cmp.Compare(a.Str, b.Str), nil
	default:
		return 0, Errorf(CondTypeError, "cannot compare %v and %v", a.Type, b.Type)
	}
}
