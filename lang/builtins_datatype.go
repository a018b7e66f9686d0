// Copyright © 2024 The ELPS authors

package lang

import (
	"github.com/luthersystems/lists/datatype"
)

// Names under which datatype values are wrapped by Native.
const (
	NativeComplex = "complex"
	NativeColor   = "color"
	NativeSex     = "sex"
	NativePerson  = "person"
)

func loadDatatypeBuiltins(r *Registry) {
	r.Define("complex", []string{"re", "im"}, "Returns the complex number re + im*i.", builtinComplex)
	r.Define("complex-add", []string{"a", "b"}, "Returns the sum of two complex numbers.", builtinComplexAdd)
	r.Define("complex-sub", []string{"a", "b"}, "Returns the difference of two complex numbers.", builtinComplexSub)
	r.Define("complex-re", []string{"z"}, "Returns the real part of z.", builtinComplexPart(datatype.Complex.Real))
	r.Define("complex-im", []string{"z"}, "Returns the imaginary part of z.", builtinComplexPart(datatype.Complex.Imag))
	r.Define("color", []string{"name"},
		`Returns the color with the given name, one of "Red", "Green" or "Blue".`,
		builtinColor)
	r.Define("translate", []string{"color"}, "Returns the German name of a color.", builtinTranslate)
	r.Define("sex", []string{"name"}, `Returns the sex with the given name, "Male" or "Female".`, builtinSex)
	r.Define("person", []string{"name", "surname", "age", "sex"},
		"Returns a person record.  Names must be non-empty, age must not be negative and sex is a sex value or its name.",
		builtinPerson)
	r.Define("fit-for-service?", []string{"person"},
		"Returns true if the person is male and has reached the age of majority.",
		personPredicate(datatype.FitForService))
	r.Define("minor?", []string{"person"}, "Returns true if the person is younger than the age of majority.", personPredicate(datatype.IsMinor))
}

func complexValue(z datatype.Complex) *Value {
	return Native(NativeComplex, z)
}

func builtinComplex(env *Env, args []*Value) *Value {
	re, lerr := argNumber(args, 0)
	if lerr != nil {
		return lerr
	}
	im, lerr := argNumber(args, 1)
	if lerr != nil {
		return lerr
	}
	return complexValue(datatype.NewComplex(re.float(), im.float()))
}

func complexPair(args []*Value) (datatype.Complex, datatype.Complex, *Value) {
	a, lerr := argNative[datatype.Complex](args, 0, NativeComplex)
	if lerr != nil {
		return a, a, lerr
	}
	b, lerr := argNative[datatype.Complex](args, 1, NativeComplex)
	if lerr != nil {
		return a, b, lerr
	}
	return a, b, nil
}

func builtinComplexAdd(env *Env, args []*Value) *Value {
	a, b, lerr := complexPair(args)
	if lerr != nil {
		return lerr
	}
	return complexValue(a.Add(b))
}

func builtinComplexSub(env *Env, args []*Value) *Value {
	a, b, lerr := complexPair(args)
	if lerr != nil {
		return lerr
	}
	return complexValue(a.Sub(b))
}

func builtinComplexPart(part func(datatype.Complex) float64) BuiltinFunc {
	return func(env *Env, args []*Value) *Value {
		z, lerr := argNative[datatype.Complex](args, 0, NativeComplex)
		if lerr != nil {
			return lerr
		}
		return Float(part(z))
	}
}

func builtinColor(env *Env, args []*Value) *Value {
	name, lerr := argString(args, 0)
	if lerr != nil {
		return lerr
	}
	c, err := datatype.NewColor(name)
	if err != nil {
		return ErrorFromGo(err)
	}
	return Native(NativeColor, c)
}

func builtinTranslate(env *Env, args []*Value) *Value {
	c, lerr := argNative[datatype.Color](args, 0, NativeColor)
	if lerr != nil {
		return lerr
	}
	s, err := c.Translate()
	if err != nil {
		return ErrorFromGo(err)
	}
	return String(s)
}

func builtinSex(env *Env, args []*Value) *Value {
	name, lerr := argString(args, 0)
	if lerr != nil {
		return lerr
	}
	s, err := datatype.NewSex(name)
	if err != nil {
		return ErrorFromGo(err)
	}
	return Native(NativeSex, s)
}

// argSex accepts either a sex value or the name of one.
func argSex(args []*Value, i int) (datatype.Sex, *Value) {
	if args[i].Type == TString {
		s, err := datatype.NewSex(args[i].Str)
		if err != nil {
			return s, ErrorFromGo(err)
		}
		return s, nil
	}
	return argNative[datatype.Sex](args, i, NativeSex)
}

func builtinPerson(env *Env, args []*Value) *Value {
	name, lerr := argString(args, 0)
	if lerr != nil {
		return lerr
	}
	surname, lerr := argString(args, 1)
	if lerr != nil {
		return lerr
	}
	age, lerr := argInt(args, 2)
	if lerr != nil {
		return lerr
	}
	sex, lerr := argSex(args, 3)
	if lerr != nil {
		return lerr
	}
	p, err := datatype.NewPerson(name, surname, age, sex)
	if err != nil {
		return ErrorFromGo(err)
	}
	return Native(NativePerson, p)
}

func personPredicate(test func(datatype.Person) bool) BuiltinFunc {
	return func(env *Env, args []*Value) *Value {
		p, lerr := argNative[datatype.Person](args, 0, NativePerson)
		if lerr != nil {
			return lerr
		}
		return Bool(test(p))
	}
}
