// Copyright © 2024 The ELPS authors

package seq

import "cmp"

// Max returns the largest element of s.
func Max[T cmp.Ordered](s []T) (T, error) {
	return MaxFunc(s, cmp.Compare[T])
}

// MaxFunc returns the largest element of s according to cmp.  When several
// elements are maximal the first one is returned.
func MaxFunc[T any](s []T, cmp func(a, b T) int) (T, error) {
	i, err := indexBest(s, func(a, b T) bool { return cmp(a, b) > 0 })
	if err != nil {
		var zero T
		return zero, newError("max", err, "")
	}
	return s[i], nil
}

// Min returns the smallest element of s.
func Min[T cmp.Ordered](s []T) (T, error) {
	return MinFunc(s, cmp.Compare[T])
}

// MinFunc returns the smallest element of s according to cmp.  When several
// elements are minimal the first one is returned.
func MinFunc[T any](s []T, cmp func(a, b T) int) (T, error) {
	i, err := indexBest(s, func(a, b T) bool { return cmp(a, b) < 0 })
	if err != nil {
		var zero T
		return zero, newError("min", err, "")
	}
	return s[i], nil
}

// IndexMax returns the index of the first largest element of s.
func IndexMax[T cmp.Ordered](s []T) (int, error) {
	return IndexMaxFunc(s, cmp.Compare[T])
}

// IndexMaxFunc is like IndexMax but orders elements using cmp.
func IndexMaxFunc[T any](s []T, cmp func(a, b T) int) (int, error) {
	i, err := indexBest(s, func(a, b T) bool { return cmp(a, b) > 0 })
	if err != nil {
		return -1, newError("index-max", err, "")
	}
	return i, nil
}

// IndexMin returns the index of the first smallest element of s.
func IndexMin[T cmp.Ordered](s []T) (int, error) {
	return IndexMinFunc(s, cmp.Compare[T])
}

// IndexMinFunc is like IndexMin but orders elements using cmp.
func IndexMinFunc[T any](s []T, cmp func(a, b T) int) (int, error) {
	i, err := indexBest(s, func(a, b T) bool { return cmp(a, b) < 0 })
	if err != nil {
		return -1, newError("index-min", err, "")
	}
	return i, nil
}

// indexBest returns the index of the first element x of s for which no other
// element y satisfies better(y, x).
func indexBest[T any](s []T, better func(a, b T) bool) (int, error) {
	if len(s) == 0 {
		return -1, ErrEmptySequence
	}
	return scanBest(s[1:], better, 1, s[0], 0), nil
}

func scanBest[T any](s []T, better func(a, b T) bool, i int, best T, bestIdx int) int {
	if len(s) == 0 {
		return bestIdx
	}
	if better(s[0], best) {
		return scanBest(s[1:], better, i+1, s[0], i)
	}
	return scanBest(s[1:], better, i+1, best, bestIdx)
}

// IsSortedAsc reports whether each element of s is less than or equal to its
// successor.
func IsSortedAsc[T cmp.Ordered](s []T) bool {
	return IsSortedAscFunc(s, cmp.Compare[T])
}

// IsSortedAscFunc is like IsSortedAsc but orders elements using cmp.
func IsSortedAscFunc[T any](s []T, cmp func(a, b T) int) bool {
	if len(s) < 2 {
		return true
	}
	return cmp(s[0], s[1]) <= 0 && IsSortedAscFunc(s[1:], cmp)
}

// IsSortedDesc reports whether each element of s is greater than or equal to
// its successor.
func IsSortedDesc[T cmp.Ordered](s []T) bool {
	return IsSortedDescFunc(s, cmp.Compare[T])
}

// IsSortedDescFunc is like IsSortedDesc but orders elements using cmp.
func IsSortedDescFunc[T any](s []T, cmp func(a, b T) int) bool {
	if len(s) < 2 {
		return true
	}
	return cmp(s[0], s[1]) >= 0 && IsSortedDescFunc(s[1:], cmp)
}

// SelectionSort returns the elements of s in ascending order.  Each step
// moves the first minimal element of the remaining input to the output.
func SelectionSort[T cmp.Ordered](s []T) []T {
	return SelectionSortFunc(s, cmp.Compare[T])
}

// SelectionSortFunc is like SelectionSort but orders elements using cmp.  The
// sort is stable.
func SelectionSortFunc[T any](s []T, cmp func(a, b T) int) []T {
	return selectionSort(s, cmp, make([]T, 0, len(s)))
}

func selectionSort[T any](s []T, cmp func(a, b T) int, acc []T) []T {
	if len(s) == 0 {
		return acc
	}
	i, _ := indexBest(s, func(a, b T) bool { return cmp(a, b) < 0 })
	return selectionSort(removeAt(s, i), cmp, append(acc, s[i]))
}

// removeAt returns a copy of s without the element at index i.
func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// InsertionSort returns the elements of s in ascending order.  The tail is
// sorted first and the head is then inserted into its place.
func InsertionSort[T cmp.Ordered](s []T) []T {
	return InsertionSortFunc(s, cmp.Compare[T])
}

// InsertionSortFunc is like InsertionSort but orders elements using cmp.  The
// sort is stable.
func InsertionSortFunc[T any](s []T, cmp func(a, b T) int) []T {
	if len(s) == 0 {
		return []T{}
	}
	return insert(s[0], InsertionSortFunc(s[1:], cmp), cmp, make([]T, 0, len(s)))
}

// insert places el before the first element of sorted that is not less than
// it.
func insert[T any](el T, sorted []T, cmp func(a, b T) int, acc []T) []T {
	if len(sorted) == 0 || cmp(el, sorted[0]) <= 0 {
		acc = append(acc, el)
		return append(acc, sorted...)
	}
	return insert(el, sorted[1:], cmp, append(acc, sorted[0]))
}

// BubbleSort returns the elements of s in ascending order.  Each pass carries
// the largest remaining element to the end, after which the prefix is sorted
// recursively.
func BubbleSort[T cmp.Ordered](s []T) []T {
	return BubbleSortFunc(s, cmp.Compare[T])
}

// BubbleSortFunc is like BubbleSort but orders elements using cmp.  The sort
// is stable.
func BubbleSortFunc[T any](s []T, cmp func(a, b T) int) []T {
	if len(s) < 2 {
		return clone(s)
	}
	pass := bubble(s[0], s[1:], cmp, make([]T, 0, len(s)))
	n := len(pass) - 1
	return append(BubbleSortFunc(pass[:n], cmp), pass[n])
}

// bubble carries the largest element seen so far towards the end of s.
func bubble[T any](carry T, s []T, cmp func(a, b T) int, acc []T) []T {
	if len(s) == 0 {
		return append(acc, carry)
	}
	if cmp(carry, s[0]) > 0 {
		return bubble(carry, s[1:], cmp, append(acc, s[0]))
	}
	return bubble(s[0], s[1:], cmp, append(acc, carry))
}
