// Copyright © 2024 The ELPS authors

package seq

// Curry2 converts a function of two arguments into a chain of functions of
// one argument each.  Curry2(fn)(a)(b) == fn(a, b).
func Curry2[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return fn(a)(b)
	}
}

// Partial fixes the first argument of fn.  Partial(fn, a)(b) == fn(a, b).
func Partial[A, B, C any](fn func(A, B) C, a A) func(B) C {
	return Curry2(fn)(a)
}

// Flip swaps the argument order of fn.
func Flip[A, B, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return fn(a, b)
	}
}
