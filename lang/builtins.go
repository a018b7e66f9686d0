// Copyright © 2024 The ELPS authors

package lang

import (
	"bytes"
	"fmt"

	"github.com/luthersystems/lists/seq"
)

// LoadBuiltins registers the default builtins in r.
func LoadBuiltins(r *Registry) {
	loadCoreBuiltins(r)
	loadSeqBuiltins(r)
	loadDatatypeBuiltins(r)
}

func loadCoreBuiltins(r *Registry) {
	r.Define("list", []string{"&rest items"},
		"Returns a list of its arguments.  [a b c] is shorthand for (list a b c).",
		builtinList)
	r.Define("print", []string{"&rest values"},
		"Writes the values, separated by spaces, to the runtime's diagnostic output.",
		builtinPrint)
	r.Define("rest", []string{"list"},
		"Returns the tail of a non-empty list: every element but the first.",
		builtinRest)
	r.Define("empty?", []string{"list"},
		"Returns true if the list has no elements.",
		builtinEmpty)

	r.Define("+", []string{"&rest numbers"}, "Returns the sum of its arguments.", builtinAdd)
	r.Define("-", []string{"number", "&rest numbers"},
		"Subtracts the remaining arguments from the first.  With one argument the argument is negated.",
		builtinSub)
	r.Define("*", []string{"&rest numbers"}, "Returns the product of its arguments.", builtinMul)
	r.Define("=", []string{"a", "b"}, "Returns true if a and b are structurally equal.", builtinEqual)
	r.Define("<", []string{"a", "b"}, "Returns true if a orders before b.", builtinCompare(func(n int) bool { return n < 0 }))
	r.Define(">", []string{"a", "b"}, "Returns true if a orders after b.", builtinCompare(func(n int) bool { return n > 0 }))
	r.Define("<=", []string{"a", "b"}, "Returns true unless a orders after b.", builtinCompare(func(n int) bool { return n <= 0 }))
	r.Define(">=", []string{"a", "b"}, "Returns true unless a orders before b.", builtinCompare(func(n int) bool { return n >= 0 }))

	r.Define("nonneg?", []string{"x"}, "Returns true if x >= 0.", numPredicate(func(f float64) bool { return f >= 0 }))
	r.Define("pos?", []string{"x"}, "Returns true if x > 0.", numPredicate(func(f float64) bool { return f > 0 }))
	r.Define("neg?", []string{"x"}, "Returns true if x < 0.", numPredicate(func(f float64) bool { return f < 0 }))
	r.Define("even?", []string{"n"}, "Returns true if the integer n is even.", intPredicate(func(n int64) bool { return n%2 == 0 }))
	r.Define("odd?", []string{"n"}, "Returns true if the integer n is odd.", intPredicate(func(n int64) bool { return n%2 != 0 }))
	r.Define("double", []string{"x"}, "Returns 2*x.", builtinScale(2))
	r.Define("square", []string{"x"}, "Returns x*x.", builtinSquare)
	r.Define("inc", []string{"x"}, "Returns x+1.", builtinInc)

	r.Define("curry", []string{"fun"},
		"Converts a function of two arguments into a function of one argument which returns a function of the second argument.  ((curry f) a) b) is (f a b).",
		builtinCurry)
	r.Define("partial", []string{"fun", "arg"},
		"Returns a function of one argument b computing (fun arg b).",
		builtinPartial)
	r.Define("flip", []string{"fun"},
		"Returns a function of two arguments which calls fun with the arguments swapped.",
		builtinFlip)
}

func builtinList(env *Env, args []*Value) *Value {
	cells := make([]*Value, len(args))
	copy(cells, args)
	return List(cells)
}

func builtinPrint(env *Env, args []*Value) *Value {
	var buf bytes.Buffer
	for i, v := range args {
		if i > 0 {
			buf.WriteString(" ")
		}
		if v.Type == TString {
			buf.WriteString(v.Str)
		} else {
			buf.WriteString(v.String())
		}
	}
	buf.WriteString("\n")
	if _, err := env.Runtime.Stderr.Write(buf.Bytes()); err != nil {
		return ErrorFromGo(err)
	}
	return Nil()
}

func builtinRest(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 0)
	if lerr != nil {
		return lerr
	}
	_, tail, err := seq.SplitHeadTail(cells)
	if err != nil {
		return ErrorFromGo(err)
	}
	return List(tail)
}

func builtinEmpty(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 0)
	if lerr != nil {
		return lerr
	}
	return Bool(len(cells) == 0)
}

// arith folds the numeric arguments with integer and float operations,
// switching to floats once a float is seen.
func arith(args []*Value, init *Value, iop func(a, b int64) int64, fop func(a, b float64) float64) *Value {
	for i := range args {
		if _, lerr := argNumber(args, i); lerr != nil {
			return lerr
		}
	}
	return seq.Foldl(func(acc *Value, x *Value) *Value {
		if acc.Type == TInt && x.Type == TInt {
			return Int(iop(acc.Int, x.Int))
		}
		return Float(fop(acc.float(), x.float()))
	}, init, args)
}

func builtinAdd(env *Env, args []*Value) *Value {
	return arith(args, Int(0),
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b })
}

func builtinSub(env *Env, args []*Value) *Value {
	if len(args) == 1 {
		return arith(args, Int(0),
			func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b })
	}
	if _, lerr := argNumber(args, 0); lerr != nil {
		return lerr
	}
	return arith(args[1:], args[0],
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b })
}

func builtinMul(env *Env, args []*Value) *Value {
	return arith(args, Int(1),
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b })
}

func builtinEqual(env *Env, args []*Value) *Value {
	return Bool(Equal(args[0], args[1]))
}

func builtinCompare(test func(int) bool) BuiltinFunc {
	return func(env *Env, args []*Value) *Value {
		n, lerr := Compare(args[0], args[1])
		if lerr != nil {
			return lerr
		}
		return Bool(test(n))
	}
}

func numPredicate(test func(float64) bool) BuiltinFunc {
	return func(env *Env, args []*Value) *Value {
		x, lerr := argNumber(args, 0)
		if lerr != nil {
			return lerr
		}
		return Bool(test(x.float()))
	}
}

func intPredicate(test func(int64) bool) BuiltinFunc {
	return func(env *Env, args []*Value) *Value {
		if args[0].Type != TInt {
			return argError(0, "int", args[0])
		}
		return Bool(test(args[0].Int))
	}
}

func builtinScale(k int64) BuiltinFunc {
	return func(env *Env, args []*Value) *Value {
		return builtinMul(env, []*Value{Int(k), args[0]})
	}
}

func builtinSquare(env *Env, args []*Value) *Value {
	return builtinMul(env, []*Value{args[0], args[0]})
}

func builtinInc(env *Env, args []*Value) *Value {
	return builtinAdd(env, []*Value{args[0], Int(1)})
}

// binary adapts a language function of two arguments into a Go function so
// that it can be transformed by the combinators in package seq.
func binary(env *Env, f *Value) func(a, b *Value) *Value {
	return func(a, b *Value) *Value {
		return env.Call(f, []*Value{a, b})
	}
}

func builtinCurry(env *Env, args []*Value) *Value {
	f, lerr := argFun(args, 0)
	if lerr != nil {
		return lerr
	}
	curried := seq.Curry2(binary(env, f))
	name := fmt.Sprintf("curry %s", funName(f))
	return closure(name, []string{"a"}, func(_ *Env, args []*Value) *Value {
		return closure(name, []string{"b"}, unaryBuiltin(curried(args[0])))
	})
}

func builtinPartial(env *Env, args []*Value) *Value {
	f, lerr := argFun(args, 0)
	if lerr != nil {
		return lerr
	}
	name := fmt.Sprintf("partial %s", funName(f))
	return closure(name, []string{"b"}, unaryBuiltin(seq.Partial(binary(env, f), args[1])))
}

func builtinFlip(env *Env, args []*Value) *Value {
	f, lerr := argFun(args, 0)
	if lerr != nil {
		return lerr
	}
	flipped := seq.Flip(binary(env, f))
	name := fmt.Sprintf("flip %s", funName(f))
	return closure(name, []string{"a", "b"}, func(_ *Env, args []*Value) *Value {
		return flipped(args[0], args[1])
	})
}

func unaryBuiltin(fn func(*Value) *Value) BuiltinFunc {
	return func(_ *Env, args []*Value) *Value {
		return fn(args[0])
	}
}
