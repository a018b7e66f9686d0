// Copyright © 2024 The ELPS authors

package seq

// Prepend returns a new sequence with el followed by the elements of s.
func Prepend[T any](el T, s []T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, el)
	return append(out, s...)
}

// Append returns a new sequence with the elements of s followed by el.
func Append[T any](el T, s []T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, s...)
	return append(out, el)
}

// DeleteFirst returns a copy of s without the first occurrence of el.  When
// el does not occur in s an unmodified copy of s is returned.
func DeleteFirst[T comparable](el T, s []T) []T {
	return DeleteFirstFunc(el, s, equals[T])
}

// DeleteFirstFunc is like DeleteFirst but compares elements using eq.
func DeleteFirstFunc[T any](el T, s []T, eq func(a, b T) bool) []T {
	return deleteFirst(el, s, eq, make([]T, 0, len(s)))
}

func deleteFirst[T any](el T, s []T, eq func(a, b T) bool, acc []T) []T {
	if len(s) == 0 {
		return acc
	}
	if eq(s[0], el) {
		return append(acc, s[1:]...)
	}
	return deleteFirst(el, s[1:], eq, append(acc, s[0]))
}

// DeleteAll returns a copy of s with every occurrence of el removed.
func DeleteAll[T comparable](el T, s []T) []T {
	return DeleteAllFunc(el, s, equals[T])
}

// DeleteAllFunc is like DeleteAll but compares elements using eq.
func DeleteAllFunc[T any](el T, s []T, eq func(a, b T) bool) []T {
	return Filter(func(x T) bool { return !eq(x, el) }, s)
}

// Replicate returns a sequence holding n copies of el.
func Replicate[T any](el T, n int) ([]T, error) {
	if n < 0 {
		return nil, newError("replicate", ErrInvalidArgument, "negative count %d", n)
	}
	return replicate(el, n, make([]T, 0, n)), nil
}

func replicate[T any](el T, n int, acc []T) []T {
	if n == 0 {
		return acc
	}
	return replicate(el, n-1, append(acc, el))
}

// Reverse returns a new sequence with the elements of s in reverse order.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	reverseInto(s, out, len(s)-1)
	return out
}

// reverseInto stores the head of s at out[i] and continues with the tail at
// i-1.
func reverseInto[T any](s []T, out []T, i int) {
	if len(s) == 0 {
		return
	}
	out[i] = s[0]
	reverseInto(s[1:], out, i-1)
}

// Filter returns, in their original order, the elements of s for which pred
// holds.
func Filter[T any](pred func(T) bool, s []T) []T {
	return filter(pred, s, make([]T, 0, len(s)))
}

func filter[T any](pred func(T) bool, s []T, acc []T) []T {
	if len(s) == 0 {
		return acc
	}
	if pred(s[0]) {
		acc = append(acc, s[0])
	}
	return filter(pred, s[1:], acc)
}

// Map returns the result of applying fn to each element of s, in order.
func Map[T, U any](fn func(T) U, s []T) []U {
	return mapInto(fn, s, make([]U, 0, len(s)))
}

func mapInto[T, U any](fn func(T) U, s []T, acc []U) []U {
	if len(s) == 0 {
		return acc
	}
	return mapInto(fn, s[1:], append(acc, fn(s[0])))
}
