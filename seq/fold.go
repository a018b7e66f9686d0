// Copyright © 2024 The ELPS authors

package seq

import "golang.org/x/exp/constraints"

// Number is satisfied by the built-in integer and floating point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Length counts the elements of s one head at a time.  Production code should
// use the built-in len; Length exists because the recursive count is itself
// the subject of the exercise.
func Length[T any](s []T) int {
	if len(s) == 0 {
		return 0
	}
	return 1 + Length(s[1:])
}

// Sum returns the arithmetic sum of s.  The sum of the empty sequence is 0.
func Sum[N Number](s []N) N {
	if len(s) == 0 {
		return 0
	}
	return s[0] + Sum(s[1:])
}

// Count returns the number of occurrences of el in s.
func Count[T comparable](el T, s []T) int {
	return CountFunc(func(x T) bool { return x == el }, s)
}

// CountFunc returns the number of elements of s satisfying pred.
func CountFunc[T any](pred func(T) bool, s []T) int {
	if len(s) == 0 {
		return 0
	}
	n := CountFunc(pred, s[1:])
	if pred(s[0]) {
		n++
	}
	return n
}

// Foldl combines the elements of s from the left, starting with acc.
func Foldl[T, A any](fn func(A, T) A, acc A, s []T) A {
	if len(s) == 0 {
		return acc
	}
	return Foldl(fn, fn(acc, s[0]), s[1:])
}

// Foldr combines the elements of s from the right, ending with acc.
func Foldr[T, A any](fn func(T, A) A, acc A, s []T) A {
	if len(s) == 0 {
		return acc
	}
	return fn(s[0], Foldr(fn, acc, s[1:]))
}

// TryMap is like Map for functions which may fail.  The first error stops the
// traversal and is returned with no partial result.
func TryMap[T, U any](fn func(T) (U, error), s []T) ([]U, error) {
	return tryMap(fn, s, make([]U, 0, len(s)))
}

func tryMap[T, U any](fn func(T) (U, error), s []T, acc []U) ([]U, error) {
	if len(s) == 0 {
		return acc, nil
	}
	v, err := fn(s[0])
	if err != nil {
		return nil, err
	}
	return tryMap(fn, s[1:], append(acc, v))
}

// TryFilter is like Filter for predicates which may fail.
func TryFilter[T any](pred func(T) (bool, error), s []T) ([]T, error) {
	return tryFilter(pred, s, make([]T, 0, len(s)))
}

func tryFilter[T any](pred func(T) (bool, error), s []T, acc []T) ([]T, error) {
	if len(s) == 0 {
		return acc, nil
	}
	ok, err := pred(s[0])
	if err != nil {
		return nil, err
	}
	if ok {
		acc = append(acc, s[0])
	}
	return tryFilter(pred, s[1:], acc)
}

// TryFoldl is like Foldl for combining functions which may fail.
func TryFoldl[T, A any](fn func(A, T) (A, error), acc A, s []T) (A, error) {
	if len(s) == 0 {
		return acc, nil
	}
	next, err := fn(acc, s[0])
	if err != nil {
		var zero A
		return zero, err
	}
	return TryFoldl(fn, next, s[1:])
}
