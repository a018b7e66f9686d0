// Copyright © 2024 The ELPS authors

package seq_test

import (
	"testing"

	"github.com/luthersystems/lists/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	v, err := seq.First([]int{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = seq.First([]int{})
	assert.ErrorIs(t, err, seq.ErrEmptySequence)
	assert.EqualError(t, err, "first: empty sequence")
}

func TestNth(t *testing.T) {
	s := []int{10, 20, 30}
	tests := []struct {
		n       int
		want    int
		wantErr error
	}{
		{0, 10, nil},
		{1, 20, nil},
		{2, 30, nil},
		{3, 0, seq.ErrIndexOutOfRange},
		{-1, 0, seq.ErrIndexOutOfRange},
	}
	for _, tc := range tests {
		v, err := seq.Nth(s, tc.n)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, "n=%d", tc.n)
			continue
		}
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.want, v, "n=%d", tc.n)
	}

	_, err := seq.Nth(s, 3)
	assert.EqualError(t, err, "nth: index out of range: index 3 (length 3)")
}

func TestThird(t *testing.T) {
	v, err := seq.Third([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, "c", v)

	_, err = seq.Third([]string{"a", "b"})
	assert.ErrorIs(t, err, seq.ErrIndexOutOfRange)
}

func TestLast(t *testing.T) {
	v, err := seq.Last([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = seq.Last([]int{7})
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = seq.Last[int](nil)
	assert.ErrorIs(t, err, seq.ErrEmptySequence)
}

func TestRightOf(t *testing.T) {
	s := []int{1, 2, 3, 2, 5}
	v, err := seq.RightOf(s, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, v, "first occurrence decides")

	v, err = seq.RightOf(s, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = seq.RightOf(s, 5)
	assert.ErrorIs(t, err, seq.ErrNotFound)
	assert.Contains(t, err.Error(), "element is last")

	_, err = seq.RightOf(s, 9)
	assert.ErrorIs(t, err, seq.ErrNotFound)
	assert.Contains(t, err.Error(), "element is absent")
}

func TestSplitHeadTail(t *testing.T) {
	s := []int{1, 2, 3}
	head, tail, err := seq.SplitHeadTail(s)
	require.NoError(t, err)
	assert.Equal(t, 1, head)
	assert.Equal(t, []int{2, 3}, tail)

	tail[0] = 99
	assert.Equal(t, []int{1, 2, 3}, s, "tail must not alias the input")

	head, tail, err = seq.SplitHeadTail([]int{8})
	require.NoError(t, err)
	assert.Equal(t, 8, head)
	assert.Equal(t, []int{}, tail)

	_, _, err = seq.SplitHeadTail([]int{})
	assert.ErrorIs(t, err, seq.ErrEmptySequence)
}

func TestCondition(t *testing.T) {
	_, err := seq.First([]int{})
	var serr *seq.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "first", serr.Op)
	assert.Equal(t, "empty-sequence", serr.Condition())

	_, err = seq.Replicate(0, -1)
	assert.Equal(t, "invalid-argument", seq.Condition(err))
	_, err = seq.RightOf([]int{}, 1)
	assert.Equal(t, "not-found", seq.Condition(err))
	assert.Equal(t, "", seq.Condition(assert.AnError))
}
