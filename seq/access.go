// Copyright © 2024 The ELPS authors

package seq

// First returns the head of s.
func First[T any](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, newError("first", ErrEmptySequence, "")
	}
	return s[0], nil
}

// Third returns the element at index 2 of s.
func Third[T any](s []T) (T, error) {
	v, err := nth(s, 2)
	if err != nil {
		return v, newError("third", ErrIndexOutOfRange, "index 2 (length %d)", len(s))
	}
	return v, nil
}

// Nth returns the element at index n of s.  Indexing starts at zero.
func Nth[T any](s []T, n int) (T, error) {
	v, err := nth(s, n)
	if err != nil {
		return v, newError("nth", ErrIndexOutOfRange, "index %d (length %d)", n, len(s))
	}
	return v, nil
}

func nth[T any](s []T, n int) (T, error) {
	if n < 0 || len(s) == 0 {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	if n == 0 {
		return s[0], nil
	}
	return nth(s[1:], n-1)
}

// Last returns the final element of s.
func Last[T any](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, newError("last", ErrEmptySequence, "")
	}
	return last(s), nil
}

func last[T any](s []T) T {
	if len(s) == 1 {
		return s[0]
	}
	return last(s[1:])
}

// RightOf returns the element immediately following the first occurrence of
// el in s.  ErrNotFound is returned when el does not occur in s or when its
// first occurrence is the last element.
func RightOf[T comparable](s []T, el T) (T, error) {
	return RightOfFunc(s, el, equals[T])
}

// RightOfFunc is like RightOf but compares elements using eq.
func RightOfFunc[T any](s []T, el T, eq func(a, b T) bool) (T, error) {
	var zero T
	switch {
	case len(s) == 0:
		return zero, newError("right-of", ErrNotFound, "element is absent")
	case eq(s[0], el):
		if len(s) == 1 {
			return zero, newError("right-of", ErrNotFound, "element is last")
		}
		return s[1], nil
	default:
		return RightOfFunc(s[1:], el, eq)
	}
}

// SplitHeadTail decomposes s into its head and a copy of its tail.
func SplitHeadTail[T any](s []T) (T, []T, error) {
	if len(s) == 0 {
		var zero T
		return zero, nil, newError("split", ErrEmptySequence, "")
	}
	return s[0], clone(s[1:]), nil
}

func equals[T comparable](a, b T) bool {
	return a == b
}

// clone copies s into fresh storage.  The result is never nil.
func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
