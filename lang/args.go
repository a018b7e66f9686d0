// Copyright © 2024 The ELPS authors

package lang

import "fmt"

func argError(i int, want string, got *Value) *Value {
	return Errorf(CondTypeError, "argument %d: expected %s, got %v", i+1, want, got.Type)
}

func argList(args []*Value, i int) ([]*Value, *Value) {
	if args[i].Type != TList {
		return nil, argError(i, "list", args[i])
	}
	return args[i].Cells, nil
}

func argInt(args []*Value, i int) (int, *Value) {
	if args[i].Type != TInt {
		return 0, argError(i, "int", args[i])
	}
	return int(args[i].Int), nil
}

func argString(args []*Value, i int) (string, *Value) {
	if args[i].Type != TString {
		return "", argError(i, "string", args[i])
	}
	return args[i].Str, nil
}

func argNumber(args []*Value, i int) (*Value, *Value) {
	if !args[i].IsNumeric() {
		return nil, argError(i, "number", args[i])
	}
	return args[i], nil
}

func argFun(args []*Value, i int) (*Value, *Value) {
	if args[i].Type != TFun {
		return nil, argError(i, "function", args[i])
	}
	return args[i], nil
}

// argNative extracts a Go value of type T wrapped by Native.
func argNative[T any](args []*Value, i int, name string) (T, *Value) {
	var zero T
	if args[i].Type != TNative || args[i].Str != name {
		return zero, argError(i, name, args[i])
	}
	v, ok := args[i].Native.(T)
	if !ok {
		return zero, argError(i, name, args[i])
	}
	return v, nil
}

// ints converts a list of integer values.
func ints(cells []*Value) ([]int, *Value) {
	out := make([]int, len(cells))
	for i, c := range cells {
		if c.Type != TInt {
			return nil, Errorf(CondTypeError, "element %d: expected int, got %v", i, c.Type)
		}
		out[i] = int(c.Int)
	}
	return out, nil
}

// orderable verifies that the elements of cells can be compared with each
// other: either all numbers or all strings.
func orderable(cells []*Value) *Value {
	if len(cells) == 0 {
		return nil
	}
	numeric := cells[0].IsNumeric()
	for i, c := range cells {
		if c.IsNumeric() != numeric || (!numeric && c.Type != TString) {
			return Errorf(CondTypeError, "element %d: cannot order %v with %v", i, c.Type, cells[0].Type)
		}
	}
	return nil
}

// compareChecked compares values already validated by orderable.
func compareChecked(a, b *Value) int {
	n, _ := Compare(a, b)
	return n
}

// callPredicate adapts a language predicate for use with package seq.
func callPredicate(env *Env, f *Value) func(*Value) (bool, error) {
	return func(x *Value) (bool, error) {
		r := env.Call(f, []*Value{x})
		if r.Type == TError {
			return false, GoError(r)
		}
		if r.Type != TBool {
			return false, GoError(Errorf(CondTypeError, "predicate returned %v, not bool", r.Type))
		}
		return r.Bool, nil
	}
}

// callUnary adapts a language function of one argument for use with package
// seq.
func callUnary(env *Env, f *Value) func(*Value) (*Value, error) {
	return func(x *Value) (*Value, error) {
		r := env.Call(f, []*Value{x})
		return r, GoError(r)
	}
}

// closure returns a function value implemented in Go which is not
// registered under a global name.
func closure(name string, formals []string, fn BuiltinFunc) *Value {
	minArgs, maxArgs := arity(formals)
	return &Value{Type: TFun, Fun: &Function{
		Name:    name,
		Formals: formals,
		Builtin: fn,
		MinArgs: minArgs,
		MaxArgs: maxArgs,
	}}
}

func funName(f *Value) string {
	if f.Fun.Name != "" {
		return f.Fun.Name
	}
	return fmt.Sprint(f)
}
