// Copyright © 2024 The ELPS authors

package seq

// IsSublist reports whether sub occurs as a contiguous run within s.  The
// empty sequence is a sublist of every sequence.
func IsSublist[T comparable](sub, s []T) bool {
	return IsSublistFunc(sub, s, equals[T])
}

// IsSublistFunc is like IsSublist but compares elements using eq.
//
// The outer recursion advances through s looking for a position where the
// head of sub matches.  The rest of sub must then match contiguously from that
// position, otherwise the search resumes one element further along s.
func IsSublistFunc[T any](sub, s []T, eq func(a, b T) bool) bool {
	switch {
	case len(sub) == 0:
		return true
	case len(s) < len(sub):
		return false
	case eq(sub[0], s[0]) && matchesFrom(sub[1:], s[1:], eq):
		return true
	default:
		return IsSublistFunc(sub, s[1:], eq)
	}
}

func matchesFrom[T any](rest, s []T, eq func(a, b T) bool) bool {
	if len(rest) == 0 {
		return true
	}
	if len(s) == 0 {
		return false
	}
	return eq(rest[0], s[0]) && matchesFrom(rest[1:], s[1:], eq)
}

// IsSubsequence reports whether the elements of sub appear in s in the same
// relative order, not necessarily adjacent to each other.
func IsSubsequence[T comparable](sub, s []T) bool {
	return IsSubsequenceFunc(sub, s, equals[T])
}

// IsSubsequenceFunc is like IsSubsequence but compares elements using eq.
func IsSubsequenceFunc[T any](sub, s []T, eq func(a, b T) bool) bool {
	switch {
	case len(sub) == 0:
		return true
	case len(s) == 0:
		return false
	case eq(sub[0], s[0]):
		return IsSubsequenceFunc(sub[1:], s[1:], eq)
	default:
		return IsSubsequenceFunc(sub, s[1:], eq)
	}
}

// AllEqual reports whether all elements of s are equal to each other.  It is
// vacuously true for sequences with fewer than two elements.
func AllEqual[T comparable](s []T) bool {
	return AllEqualFunc(s, equals[T])
}

// AllEqualFunc is like AllEqual but compares elements using eq.
func AllEqualFunc[T any](s []T, eq func(a, b T) bool) bool {
	if len(s) < 2 {
		return true
	}
	return eq(s[0], s[1]) && AllEqualFunc(s[1:], eq)
}

// IsLonger reports whether a has more elements than b.  Both sequences are
// consumed in lock step so neither length is computed up front.
func IsLonger[T, U any](a []T, b []U) bool {
	switch {
	case len(a) == 0:
		return false
	case len(b) == 0:
		return true
	default:
		return IsLonger(a[1:], b[1:])
	}
}

// Equal reports whether a and b have the same length and equal elements in
// the same order.
func Equal[T comparable](a, b []T) bool {
	return EqualFunc(a, b, equals[T])
}

// EqualFunc is like Equal but compares elements using eq.
func EqualFunc[T any](a, b []T, eq func(a, b T) bool) bool {
	switch {
	case len(a) == 0 && len(b) == 0:
		return true
	case len(a) == 0 || len(b) == 0:
		return false
	default:
		return eq(a[0], b[0]) && EqualFunc(a[1:], b[1:], eq)
	}
}

// IsPalindrome reports whether s reads the same forwards and backwards.
func IsPalindrome[T comparable](s []T) bool {
	return IsPalindromeFunc(s, equals[T])
}

// IsPalindromeFunc is like IsPalindrome but compares elements using eq.
func IsPalindromeFunc[T any](s []T, eq func(a, b T) bool) bool {
	return EqualFunc(s, Reverse(s), eq)
}
