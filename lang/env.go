// Copyright © 2024 The ELPS authors

package lang

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/luthersystems/lists/seq"
)

// Runtime is the state shared by a root environment and all of its
// children.
type Runtime struct {
	Registry *Registry
	Reader   Reader
	Stderr   io.Writer
	Profiler Profiler
	// MaxDepth limits the number of nested function calls.  Zero means
	// DefaultMaxDepth.
	MaxDepth int
	// MaxAlloc limits the number of elements allocated by a single builtin
	// call.  Zero means DefaultMaxAlloc.
	MaxAlloc int

	depth int
	ctx   context.Context
}

// Context returns the context checked before each call.
func (rt *Runtime) Context() context.Context {
	if rt.ctx == nil {
		return context.Background()
	}
	return rt.ctx
}

func (rt *Runtime) maxAlloc() int {
	if rt.MaxAlloc <= 0 {
		return DefaultMaxAlloc
	}
	return rt.MaxAlloc
}

// Depth returns the number of function calls currently in progress.
func (rt *Runtime) Depth() int {
	return rt.depth
}

// Env is a lexical scope.
type Env struct {
	Parent  *Env
	Runtime *Runtime
	scope   map[string]*Value
}

// NewEnv returns a child of parent.  When parent is nil a root environment
// with a fresh Runtime is returned.
func NewEnv(parent *Env) *Env {
	if parent == nil {
		return NewEnvRuntime(&Runtime{
			Registry: NewRegistry(),
			Stderr:   os.Stderr,
			MaxDepth: DefaultMaxDepth,
			MaxAlloc: DefaultMaxAlloc,
		})
	}
	return &Env{
		Parent:  parent,
		Runtime: parent.Runtime,
		scope:   make(map[string]*Value),
	}
}

// NewEnvRuntime returns a root environment using rt.
func NewEnvRuntime(rt *Runtime) *Env {
	if rt.Registry == nil {
		rt.Registry = NewRegistry()
	}
	return &Env{Runtime: rt, scope: make(map[string]*Value)}
}

// InitializeUserEnv applies config to env and loads the default builtins
// into its registry.
func InitializeUserEnv(env *Env, config ...Config) *Value {
	for _, c := range config {
		if v := c(env); v.Type == TError {
			return v
		}
	}
	LoadBuiltins(env.Runtime.Registry)
	return Nil()
}

// Get resolves name in the scope chain and then in the registry.
func (env *Env) Get(name string) *Value {
	for e := env; e != nil; e = e.Parent {
		if v, ok := e.scope[name]; ok {
			return v
		}
	}
	if b, ok := env.Runtime.Registry.Lookup(name); ok {
		return b.Fun
	}
	return Errorf(CondUnboundSymbol, "%s", name)
}

// Put binds name to v in env.
func (env *Env) Put(name string, v *Value) {
	env.scope[name] = v
}

// Names returns the names bound in env and its ancestors.
func (env *Env) Names() []string {
	var names []string
	for e := env; e != nil; e = e.Parent {
		for name := range e.scope {
			names = append(names, name)
		}
	}
	return names
}

// Eval evaluates v.
func (env *Env) Eval(v *Value) *Value {
	switch v.Type {
	case TSymbol:
		return env.Get(v.Str)
	case TSExpr:
		return env.evalSExpr(v)
	default:
		return v
	}
}

func (env *Env) evalSExpr(v *Value) *Value {
	if len(v.Cells) == 0 {
		return Nil()
	}
	head := v.Cells[0]
	if head.Type == TSymbol {
		if op, ok := specialOp(head.Str); ok {
			return op(env, v.Cells[1:])
		}
	}
	fun := env.Eval(head)
	if fun.Type == TError {
		return fun
	}
	if fun.Type != TFun {
		return Errorf(CondTypeError, "not a function: %v", fun)
	}
	args, err := seq.TryMap(env.evalArg, v.Cells[1:])
	if err != nil {
		return ErrorFromGo(err)
	}
	return env.Call(fun, args)
}

func (env *Env) evalArg(v *Value) (*Value, error) {
	r := env.Eval(v)
	return r, GoError(r)
}

// Call applies fun to evaluated arguments.
func (env *Env) Call(fun *Value, args []*Value) *Value {
	if fun.Type != TFun {
		return Errorf(CondTypeError, "not a function: %v", fun)
	}
	rt := env.Runtime
	if err := rt.Context().Err(); err != nil {
		return Errorf(CondContextCancelled, "%v", err)
	}
	maxDepth := rt.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if rt.depth >= maxDepth {
		return Errorf(CondStackOverflow, "maximum call depth exceeded: %d", maxDepth)
	}
	rt.depth++
	defer func() { rt.depth-- }()
	if rt.Profiler != nil {
		defer rt.Profiler.Start(fun)()
	}

	f := fun.Fun
	var result *Value
	if f.Builtin != nil {
		if len(args) < f.MinArgs || (f.MaxArgs >= 0 && len(args) > f.MaxArgs) {
			return withFun(Errorf(CondArityError, "invalid number of arguments: %d", len(args)), f.Name)
		}
		result = f.Builtin(env, args)
	} else {
		result = f.callLambda(args)
	}
	if result.Type == TError {
		return withFun(result, f.Name)
	}
	return result
}

func (f *Function) callLambda(args []*Value) *Value {
	if len(args) != len(f.Formals) {
		return Errorf(CondArityError, "invalid number of arguments: %d", len(args))
	}
	scope := NewEnv(f.Closure)
	for i, name := range f.Formals {
		scope.Put(name, args[i])
	}
	return scope.evalBody(f.Body)
}

func (env *Env) evalBody(body []*Value) *Value {
	result := Nil()
	for _, expr := range body {
		result = env.Eval(expr)
		if result.Type == TError {
			return result
		}
	}
	return result
}

// Load reads all expressions from r and evaluates them in order.  The value
// of the last expression is returned, or the first error encountered.
func (env *Env) Load(name string, r io.Reader) *Value {
	if env.Runtime.Reader == nil {
		return Errorf(CondError, "no reader configured")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return errorWithCause(CondSyntaxError, err)
	}
	return env.evalBody(exprs)
}

// LoadString is like Load for source held in a string.
func (env *Env) LoadString(name, source string) *Value {
	return env.Load(name, strings.NewReader(source))
}

type specialFunc func(env *Env, args []*Value) *Value

func specialOp(name string) (specialFunc, bool) {
	switch name {
	case "quote":
		return opQuote, true
	case "if":
		return opIf, true
	case "define":
		return opDefine, true
	case "lambda":
		return opLambda, true
	default:
		return nil, false
	}
}

// IsSpecialOp reports whether name is a special form.
func IsSpecialOp(name string) bool {
	_, ok := specialOp(name)
	return ok
}

func opQuote(env *Env, args []*Value) *Value {
	if len(args) != 1 {
		return Errorf(CondSyntaxError, "quote: expects one argument")
	}
	return quoted(args[0])
}

// quoted turns call expressions into plain lists.
func quoted(v *Value) *Value {
	if v.Type != TSExpr {
		return v
	}
	return List(seq.Map(quoted, v.Cells))
}

func opIf(env *Env, args []*Value) *Value {
	if len(args) != 2 && len(args) != 3 {
		return Errorf(CondSyntaxError, "if: expects a condition and one or two branches")
	}
	cond := env.Eval(args[0])
	if cond.Type == TError {
		return cond
	}
	if truthy(cond) {
		return env.Eval(args[1])
	}
	if len(args) == 3 {
		return env.Eval(args[2])
	}
	return Nil()
}

func truthy(v *Value) bool {
	switch {
	case v.Type == TBool:
		return v.Bool
	case v.IsNil():
		return false
	default:
		return true
	}
}

func opDefine(env *Env, args []*Value) *Value {
	if len(args) != 2 || args[0].Type != TSymbol {
		return Errorf(CondSyntaxError, "define: expects a symbol and a value")
	}
	name := args[0].Str
	if IsSpecialOp(name) {
		return Errorf(CondSyntaxError, "define: cannot redefine special form %s", name)
	}
	v := env.Eval(args[1])
	if v.Type == TError {
		return v
	}
	if v.Type == TFun && v.Fun.Builtin == nil && v.Fun.Name == "" {
		named := *v.Fun
		named.Name = name
		v = &Value{Type: TFun, Fun: &named}
	}
	env.Put(name, v)
	return Symbol(name)
}

func opLambda(env *Env, args []*Value) *Value {
	if len(args) < 2 || args[0].Type != TSExpr {
		return Errorf(CondSyntaxError, "lambda: expects a formal argument list and a body")
	}
	formals := make([]string, 0, len(args[0].Cells))
	for _, f := range args[0].Cells {
		if f.Type != TSymbol {
			return Errorf(CondSyntaxError, "lambda: formal argument is not a symbol: %v", f)
		}
		formals = append(formals, f.Str)
	}
	return &Value{Type: TFun, Fun: &Function{
		Formals: formals,
		Body:    args[1:],
		Closure: env,
	}}
}
