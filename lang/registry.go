// Copyright © 2024 The ELPS authors

package lang

import (
	"sort"
	"strings"
)

// Builtin documents a function defined in Go.
type Builtin struct {
	Name    string
	Formals []string
	Doc     string
	Fun     *Value
}

// Usage returns the call form of the builtin, e.g. "(nth list n)".
func (b *Builtin) Usage() string {
	if len(b.Formals) == 0 {
		return "(" + b.Name + ")"
	}
	return "(" + b.Name + " " + strings.Join(b.Formals, " ") + ")"
}

// Registry holds the builtins available to every environment sharing a
// Runtime.
type Registry struct {
	builtins map[string]*Builtin
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{builtins: make(map[string]*Builtin)}
}

// Define registers fun under name.  Formals name the arguments for
// documentation; a trailing "&rest x" formal makes the builtin variadic and
// a formal in brackets, like "[init]", is optional.
func (r *Registry) Define(name string, formals []string, doc string, fun BuiltinFunc) {
	r.builtins[name] = &Builtin{
		Name:    name,
		Formals: formals,
		Doc:     doc,
		Fun:     closure(name, formals, fun),
	}
}

func arity(formals []string) (minArgs, maxArgs int) {
	for _, f := range formals {
		switch {
		case strings.HasPrefix(f, "&rest"):
			return minArgs, -1
		case strings.HasPrefix(f, "["):
			maxArgs++
		default:
			minArgs++
			maxArgs++
		}
	}
	return minArgs, maxArgs
}

// Lookup returns the builtin registered under name.
func (r *Registry) Lookup(name string) (*Builtin, bool) {
	b, ok := r.builtins[name]
	return b, ok
}

// Names returns the names of all registered builtins in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builtins))
	for name := range r.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
