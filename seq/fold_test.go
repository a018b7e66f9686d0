// Copyright © 2024 The ELPS authors

package seq_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/luthersystems/lists/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	assert.Equal(t, 0, seq.Length([]int{}))
	assert.Equal(t, 0, seq.Length[int](nil))
	assert.Equal(t, 5, seq.Length([]int{1, 2, 3, 4, 5}))

	big, err := seq.Replicate(0, 1000)
	require.NoError(t, err)
	assert.Equal(t, len(big), seq.Length(big))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0, seq.Sum([]int{}))
	assert.Equal(t, 15, seq.Sum([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, -2, seq.Sum([]int{1, -3}))
	assert.InDelta(t, 3.75, seq.Sum([]float64{1.5, 2.25}), 1e-9)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, seq.Count(2, []int{1, 2, 3, 2, 4, 2}))
	assert.Equal(t, 0, seq.Count(9, []int{1, 2}))
	assert.Equal(t, 2, seq.CountFunc(func(x int) bool { return x > 2 }, []int{1, 2, 3, 4}))
}

func TestFold(t *testing.T) {
	digits := func(acc string, x int) string { return acc + strconv.Itoa(x) }
	assert.Equal(t, "123", seq.Foldl(digits, "", []int{1, 2, 3}))

	cons := func(x int, acc []int) []int { return append(acc, x) }
	assert.Equal(t, []int{3, 2, 1}, seq.Foldr(cons, []int{}, []int{1, 2, 3}))
}

func TestTryMap(t *testing.T) {
	got, err := seq.TryMap(strconv.Atoi, []string{"1", "22"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 22}, got)

	got, err = seq.TryMap(strconv.Atoi, []string{"1", "x", "3"})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestTryFilter(t *testing.T) {
	errOdd := errors.New("odd")
	pred := func(x int) (bool, error) {
		if x < 0 {
			return false, errOdd
		}
		return x%2 == 0, nil
	}
	got, err := seq.TryFilter(pred, []int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got)

	_, err = seq.TryFilter(pred, []int{2, -1})
	assert.ErrorIs(t, err, errOdd)
}

func TestTryFoldl(t *testing.T) {
	stop := errors.New("stop")
	add := func(acc, x int) (int, error) {
		if x == 0 {
			return 0, stop
		}
		return acc + x, nil
	}
	v, err := seq.TryFoldl(add, 0, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	v, err = seq.TryFoldl(add, 0, []int{1, 0, 3})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 0, v)
}
