// Copyright © 2024 The ELPS authors

package seq_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/luthersystems/lists/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxMin(t *testing.T) {
	s := []int{3, 9, -1, 9, -1}
	v, err := seq.Max(s)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	v, err = seq.Min(s)
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	i, err := seq.IndexMax(s)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = seq.IndexMin(s)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = seq.Max([]int{})
	assert.ErrorIs(t, err, seq.ErrEmptySequence)
	_, err = seq.Min([]int{})
	assert.ErrorIs(t, err, seq.ErrEmptySequence)
	i, err = seq.IndexMax([]string{})
	assert.ErrorIs(t, err, seq.ErrEmptySequence)
	assert.Equal(t, -1, i)
	_, err = seq.IndexMin([]string{})
	assert.EqualError(t, err, "index-min: empty sequence")
}

func TestIsSorted(t *testing.T) {
	assert.True(t, seq.IsSortedAsc([]int{}))
	assert.True(t, seq.IsSortedAsc([]int{1, 1, 2, 5}))
	assert.False(t, seq.IsSortedAsc([]int{1, 3, 2}))
	assert.True(t, seq.IsSortedDesc([]int{5, 5, 2, 1}))
	assert.False(t, seq.IsSortedDesc([]int{5, 6}))
	assert.True(t, seq.IsSortedDesc([]string{"c", "b", "a"}))
}

type sorter struct {
	name string
	fn   func([]int) []int
	fnc  func([]pair, func(a, b pair) int) []pair
}

type pair struct {
	key   int
	label string
}

var sorters = []sorter{
	{"selection", seq.SelectionSort[int], seq.SelectionSortFunc[pair]},
	{"insertion", seq.InsertionSort[int], seq.InsertionSortFunc[pair]},
	{"bubble", seq.BubbleSort[int], seq.BubbleSortFunc[pair]},
}

func TestSorts(t *testing.T) {
	inputs := [][]int{
		{},
		{1},
		{2, 1},
		{3, 1, 2, 5, 4},
		{5, 4, 3, 2, 1},
		{1, 2, 3, 4, 5},
		{4, -2, 4, 0, -2, 7},
	}
	for _, srt := range sorters {
		t.Run(srt.name, func(t *testing.T) {
			for _, in := range inputs {
				orig := slices.Clone(in)
				want := slices.Clone(in)
				slices.Sort(want)

				got := srt.fn(in)
				assert.Equal(t, want, got, "sorting %v", orig)
				assert.Equal(t, orig, in, "input must not be modified")
				assert.True(t, seq.IsSortedAsc(got))
			}
		})
	}
}

func TestSortsStable(t *testing.T) {
	in := []pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {0, "e"}}
	want := []pair{{0, "e"}, {1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}
	byKey := func(a, b pair) int { return cmp.Compare(a.key, b.key) }
	for _, srt := range sorters {
		assert.Equal(t, want, srt.fnc(in, byKey), srt.name)
	}
}
