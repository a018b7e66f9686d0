// Copyright © 2024 The ELPS authors

package seq_test

import (
	"testing"

	"github.com/luthersystems/lists/seq"
	"github.com/stretchr/testify/assert"
)

func add(a, b int) int { return a + b }

func TestCurry2(t *testing.T) {
	assert.Equal(t, 7, seq.Curry2(add)(2)(5))
	assert.Equal(t, add(2, 5), seq.Curry2(add)(2)(5))
	assert.Equal(t, 7, seq.Uncurry2(seq.Curry2(add))(2, 5))
}

func TestPartial(t *testing.T) {
	addTwo := seq.Partial(add, 2)
	assert.Equal(t, 7, addTwo(5))

	pos := seq.Partial(seq.Filter[int], func(x int) bool { return x > 0 })
	assert.Equal(t, []int{1, 2}, pos([]int{1, -1, 2, -2}))
}

func TestFlip(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	assert.Equal(t, 3, sub(5, 2))
	assert.Equal(t, -3, seq.Flip(sub)(5, 2))
}
