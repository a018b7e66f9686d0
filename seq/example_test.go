// Copyright © 2024 The ELPS authors

package seq_test

import (
	"errors"
	"fmt"

	"github.com/luthersystems/lists/seq"
)

func ExampleFilter() {
	nonneg := func(x int) bool { return x >= 0 }
	fmt.Println(seq.Filter(nonneg, []int{1, 2, 3, 4, -3, 22, -7, 2}))
	// Output: [1 2 3 4 22 2]
}

func ExampleMap() {
	fmt.Println(seq.Map(func(x int) int { return 2 * x }, []int{1, 2, 3, 4, 5}))
	// Output: [2 4 6 8 10]
}

func ExampleNth() {
	v, _ := seq.Nth([]int{10, 20, 30}, 2)
	fmt.Println(v)
	_, err := seq.Nth([]int{10, 20, 30}, 3)
	fmt.Println(errors.Is(err, seq.ErrIndexOutOfRange))
	// Output:
	// 30
	// true
}

func ExampleIsSublist() {
	fmt.Println(seq.IsSublist([]int{2, 3}, []int{1, 2, 3, 4}))
	fmt.Println(seq.IsSublist([]int{3, 2}, []int{1, 2, 3, 4}))
	// Output:
	// true
	// false
}

func ExampleDeleteAll() {
	fmt.Println(seq.DeleteAll(2, []int{1, 2, 3, 2, 4, 2}))
	// Output: [1 3 4]
}

func ExampleCurry2() {
	add := func(a, b int) int { return a + b }
	fmt.Println(seq.Curry2(add)(2)(5))
	// Output: 7
}
