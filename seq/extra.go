// Copyright © 2024 The ELPS authors

package seq

import "math"

// EveryNth returns the elements of s at positions n, 2n, 3n, ... counting
// from one, i.e. the indices n-1, 2n-1, ....
func EveryNth[T any](s []T, n int) ([]T, error) {
	if n <= 0 {
		return nil, newError("every-nth", ErrInvalidArgument, "non-positive step %d", n)
	}
	return everyNth(s, n, n, make([]T, 0, len(s)/n)), nil
}

func everyNth[T any](s []T, n, k int, acc []T) []T {
	if len(s) == 0 {
		return acc
	}
	if k == 1 {
		return everyNth(s[1:], n, n, append(acc, s[0]))
	}
	return everyNth(s[1:], n, k-1, acc)
}

// EverySecond returns the elements of s at odd indices.
func EverySecond[T any](s []T) []T {
	out, _ := EveryNth(s, 2)
	return out
}

// Swap returns a copy of s with the elements at indices i and j exchanged.
func Swap[T any](s []T, i, j int) ([]T, error) {
	for _, k := range []int{i, j} {
		if k < 0 || k >= len(s) {
			return nil, newError("swap", ErrIndexOutOfRange, "index %d (length %d)", k, len(s))
		}
	}
	out := clone(s)
	out[i], out[j] = out[j], out[i]
	return out, nil
}

// CombineDigits joins decimal digits into a single integer, most significant
// digit first.  The empty sequence combines to 0.  A result larger than
// math.MaxInt is an ErrInvalidArgument.
func CombineDigits(digits []int) (int, error) {
	return TryFoldl(func(acc int, d int) (int, error) {
		if d < 0 || d > 9 {
			return 0, newError("combine-digits", ErrInvalidArgument, "%d is not a decimal digit", d)
		}
		if acc > (math.MaxInt-d)/10 {
			return 0, newError("combine-digits", ErrInvalidArgument, "result overflows int")
		}
		return acc*10 + d, nil
	}, 0, digits)
}

// IsPrime reports whether n is a prime number.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	return noDivisorFrom(n, 2)
}

func noDivisorFrom(n, d int) bool {
	if d*d > n {
		return true
	}
	return n%d != 0 && noDivisorFrom(n, d+1)
}

// AllPrimes reports whether every element of s is prime.  It is vacuously
// true for the empty sequence.
func AllPrimes(s []int) bool {
	if len(s) == 0 {
		return true
	}
	return IsPrime(s[0]) && AllPrimes(s[1:])
}

// Run is a maximal stretch of equal adjacent elements.
type Run[T any] struct {
	Value T
	Count int
}

// RunLength encodes s as a sequence of runs.
func RunLength[T comparable](s []T) []Run[T] {
	return RunLengthFunc(s, equals[T])
}

// RunLengthFunc is like RunLength but compares elements using eq.
func RunLengthFunc[T any](s []T, eq func(a, b T) bool) []Run[T] {
	return runLength(s, eq, []Run[T]{})
}

func runLength[T any](s []T, eq func(a, b T) bool, acc []Run[T]) []Run[T] {
	if len(s) == 0 {
		return acc
	}
	if n := len(acc); n > 0 && eq(acc[n-1].Value, s[0]) {
		acc[n-1].Count++
		return runLength(s[1:], eq, acc)
	}
	return runLength(s[1:], eq, append(acc, Run[T]{Value: s[0], Count: 1}))
}

// RunLengthDecode expands runs back into a flat sequence.
func RunLengthDecode[T any](runs []Run[T]) ([]T, error) {
	return TryFoldl(func(acc []T, r Run[T]) ([]T, error) {
		if r.Count < 1 {
			return nil, newError("rle-decode", ErrInvalidArgument, "run count %d", r.Count)
		}
		return append(acc, replicate(r.Value, r.Count, nil)...), nil
	}, []T{}, runs)
}

// MatMultiply returns the matrix product of a and b, each given as a list of
// rows.  Both matrices must be non-empty and rectangular and the number of
// columns of a must equal the number of rows of b.
func MatMultiply[N Number](a, b [][]N) ([][]N, error) {
	acols, err := matrixWidth(a)
	if err != nil {
		return nil, newError("mat-multiply", ErrInvalidArgument, "left operand: %s", err.Detail)
	}
	bcols, err := matrixWidth(b)
	if err != nil {
		return nil, newError("mat-multiply", ErrInvalidArgument, "right operand: %s", err.Detail)
	}
	if acols != len(b) {
		return nil, newError("mat-multiply", ErrInvalidArgument,
			"%dx%d and %dx%d matrices cannot be multiplied", len(a), acols, len(b), bcols)
	}
	cols := columns(b, 0, bcols, make([][]N, 0, bcols))
	return Map(func(row []N) []N {
		return Map(func(col []N) N { return dot(row, col) }, cols)
	}, a), nil
}

func matrixWidth[N any](m [][]N) (int, *Error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, &Error{Detail: "empty matrix"}
	}
	w := len(m[0])
	if !AllEqual(Map(func(row []N) int { return len(row) }, m)) {
		return 0, &Error{Detail: "ragged rows"}
	}
	return w, nil
}

func columns[N any](m [][]N, j, n int, acc [][]N) [][]N {
	if j == n {
		return acc
	}
	col := Map(func(row []N) N { return row[j] }, m)
	return columns(m, j+1, n, append(acc, col))
}

func dot[N Number](a, b []N) N {
	if len(a) == 0 {
		return 0
	}
	return a[0]*b[0] + dot(a[1:], b[1:])
}
