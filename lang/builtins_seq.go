// Copyright © 2024 The ELPS authors

package lang

import (
	"github.com/luthersystems/lists/seq"
)

func loadSeqBuiltins(r *Registry) {
	r.Define("first", []string{"list"}, "Returns the first element of a non-empty list.", listBuiltin(seqFirst))
	r.Define("third", []string{"list"}, "Returns the element at index 2.", listBuiltin(seqThird))
	r.Define("last", []string{"list"}, "Returns the last element of a non-empty list.", listBuiltin(seqLast))
	r.Define("nth", []string{"list", "n"},
		"Returns the element at index n.  Indices start at 0; an index outside the list is an index-out-of-range error.",
		builtinNth)
	r.Define("right-of", []string{"list", "el"},
		"Returns the element following the first occurrence of el.  It is a not-found error when el is absent or last.",
		builtinRightOf)
	r.Define("split", []string{"list"}, "Returns a two element list holding the head and the tail of a non-empty list.", listBuiltin(seqSplit))
	r.Define("sublist?", []string{"sub", "list"},
		"Returns true if sub occurs as a contiguous run within list.  The empty list is a sublist of every list.",
		builtinSublist)
	r.Define("subsequence?", []string{"sub", "list"},
		"Returns true if the elements of sub occur in list in the same order, not necessarily adjacent.",
		builtinSubsequence)
	r.Define("prepend", []string{"el", "list"}, "Returns a new list with el added at the front.", builtinPrepend)
	r.Define("append", []string{"el", "list"}, "Returns a new list with el added at the back.", builtinAppend)
	r.Define("delete-first", []string{"el", "list"},
		"Returns a new list without the first occurrence of el.  The list is returned unchanged when el is absent.",
		builtinDeleteFirst)
	r.Define("delete-all", []string{"el", "list"}, "Returns a new list without any occurrence of el.", builtinDeleteAll)
	r.Define("all-equal?", []string{"list"}, "Returns true if all elements are equal.  True for lists shorter than two.", listBuiltin(seqAllEqual))
	r.Define("longer?", []string{"a", "b"}, "Returns true if list a has more elements than list b.", builtinLonger)
	r.Define("length", []string{"list"}, "Returns the number of elements, counted recursively.", listBuiltin(seqLength))
	r.Define("replicate", []string{"el", "n"}, "Returns a list of n copies of el.  A negative n is an invalid-argument error.", builtinReplicate)
	r.Define("sum", []string{"list"}, "Returns the sum of a list of numbers.  The sum of [] is 0.", listBuiltin(seqSum))
	r.Define("reverse", []string{"list"}, "Returns a new list with the elements in reverse order.", listBuiltin(seqReverse))
	r.Define("equal?", []string{"a", "b"}, "Returns true if lists a and b have equal elements in the same order.", builtinListEqual)
	r.Define("filter", []string{"pred", "list"},
		"Returns, in their original order, the elements of list for which pred returns true.",
		builtinFilter)
	r.Define("map", []string{"fun", "list"}, "Returns the results of calling fun on each element of list.", builtinMap)
	r.Define("count", []string{"el", "list"}, "Returns the number of occurrences of el in list.", builtinCount)
	r.Define("foldl", []string{"fun", "init", "list"},
		"Combines the elements of list from the left: (fun (fun init x0) x1) ...",
		builtinFoldl)
	r.Define("foldr", []string{"fun", "init", "list"},
		"Combines the elements of list from the right: (fun x0 (fun x1 ... init)).",
		builtinFoldr)
	r.Define("palindrome?", []string{"list"}, "Returns true if list reads the same in both directions.", listBuiltin(seqPalindrome))
	r.Define("sorted-asc?", []string{"list"}, "Returns true if no element is greater than its successor.", orderedBuiltin(seqSortedAsc))
	r.Define("sorted-desc?", []string{"list"}, "Returns true if no element is less than its successor.", orderedBuiltin(seqSortedDesc))
	r.Define("max", []string{"list"}, "Returns the largest element of a non-empty list.", orderedBuiltin(seqMax))
	r.Define("min", []string{"list"}, "Returns the smallest element of a non-empty list.", orderedBuiltin(seqMin))
	r.Define("index-max", []string{"list"}, "Returns the index of the first largest element.", orderedBuiltin(seqIndexMax))
	r.Define("index-min", []string{"list"}, "Returns the index of the first smallest element.", orderedBuiltin(seqIndexMin))
	r.Define("selection-sort", []string{"list"}, "Sorts a list of numbers or strings by recursive selection sort.", orderedBuiltin(seqSelectionSort))
	r.Define("insertion-sort", []string{"list"}, "Sorts a list of numbers or strings by recursive insertion sort.", orderedBuiltin(seqInsertionSort))
	r.Define("bubble-sort", []string{"list"}, "Sorts a list of numbers or strings by recursive bubble sort.", orderedBuiltin(seqBubbleSort))
	r.Define("every-nth", []string{"list", "n"}, "Returns the elements at positions n, 2n, ... counting from one.", builtinEveryNth)
	r.Define("every-second", []string{"list"}, "Returns the elements at odd indices.", listBuiltin(seqEverySecond))
	r.Define("swap", []string{"list", "i", "j"}, "Returns a new list with the elements at indices i and j exchanged.", builtinSwap)
	r.Define("combine-digits", []string{"digits"}, "Joins a list of decimal digits into one integer: [1 2 3] is 123.", listBuiltin(seqCombineDigits))
	r.Define("prime?", []string{"n"}, "Returns true if the integer n is prime.", intPredicate(func(n int64) bool { return seq.IsPrime(int(n)) }))
	r.Define("all-primes?", []string{"list"}, "Returns true if every element is a prime integer.", listBuiltin(seqAllPrimes))
	r.Define("rle", []string{"list"}, "Run-length encodes list into a list of [value count] pairs.", listBuiltin(seqRunLength))
	r.Define("rle-decode", []string{"runs"}, "Expands a list of [value count] pairs produced by rle.", listBuiltin(seqRunLengthDecode))
	r.Define("mat-multiply", []string{"a", "b"}, "Returns the product of two matrices given as lists of rows.", builtinMatMultiply)
}

type listFunc func(env *Env, cells []*Value) *Value

// listBuiltin adapts a function of a single list argument.
func listBuiltin(fn listFunc) BuiltinFunc {
	return func(env *Env, args []*Value) *Value {
		cells, lerr := argList(args, 0)
		if lerr != nil {
			return lerr
		}
		return fn(env, cells)
	}
}

// orderedBuiltin adapts a function of a single list whose elements must be
// mutually ordered.
func orderedBuiltin(fn listFunc) BuiltinFunc {
	return listBuiltin(func(env *Env, cells []*Value) *Value {
		if lerr := orderable(cells); lerr != nil {
			return lerr
		}
		return fn(env, cells)
	})
}

func valueOrError(v *Value, err error) *Value {
	if err != nil {
		return ErrorFromGo(err)
	}
	return v
}

func listOrError(cells []*Value, err error) *Value {
	if err != nil {
		return ErrorFromGo(err)
	}
	return List(cells)
}

func seqFirst(env *Env, cells []*Value) *Value {
	return valueOrError(seq.First(cells))
}

func seqThird(env *Env, cells []*Value) *Value {
	return valueOrError(seq.Third(cells))
}

func seqLast(env *Env, cells []*Value) *Value {
	return valueOrError(seq.Last(cells))
}

func builtinNth(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 0)
	if lerr != nil {
		return lerr
	}
	n, lerr := argInt(args, 1)
	if lerr != nil {
		return lerr
	}
	return valueOrError(seq.Nth(cells, n))
}

func builtinRightOf(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 0)
	if lerr != nil {
		return lerr
	}
	return valueOrError(seq.RightOfFunc(cells, args[1], Equal))
}

func seqSplit(env *Env, cells []*Value) *Value {
	head, tail, err := seq.SplitHeadTail(cells)
	if err != nil {
		return ErrorFromGo(err)
	}
	return List([]*Value{head, List(tail)})
}

// twoLists extracts two list arguments.
func twoLists(args []*Value) ([]*Value, []*Value, *Value) {
	a, lerr := argList(args, 0)
	if lerr != nil {
		return nil, nil, lerr
	}
	b, lerr := argList(args, 1)
	if lerr != nil {
		return nil, nil, lerr
	}
	return a, b, nil
}

func builtinSublist(env *Env, args []*Value) *Value {
	sub, cells, lerr := twoLists(args)
	if lerr != nil {
		return lerr
	}
	return Bool(seq.IsSublistFunc(sub, cells, Equal))
}

func builtinSubsequence(env *Env, args []*Value) *Value {
	sub, cells, lerr := twoLists(args)
	if lerr != nil {
		return lerr
	}
	return Bool(seq.IsSubsequenceFunc(sub, cells, Equal))
}

func builtinPrepend(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 1)
	if lerr != nil {
		return lerr
	}
	return List(seq.Prepend(args[0], cells))
}

func builtinAppend(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 1)
	if lerr != nil {
		return lerr
	}
	return List(seq.Append(args[0], cells))
}

func builtinDeleteFirst(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 1)
	if lerr != nil {
		return lerr
	}
	return List(seq.DeleteFirstFunc(args[0], cells, Equal))
}

func builtinDeleteAll(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 1)
	if lerr != nil {
		return lerr
	}
	return List(seq.DeleteAllFunc(args[0], cells, Equal))
}

func seqAllEqual(env *Env, cells []*Value) *Value {
	return Bool(seq.AllEqualFunc(cells, Equal))
}

func builtinLonger(env *Env, args []*Value) *Value {
	a, b, lerr := twoLists(args)
	if lerr != nil {
		return lerr
	}
	return Bool(seq.IsLonger(a, b))
}

func seqLength(env *Env, cells []*Value) *Value {
	return Int(int64(seq.Length(cells)))
}

func builtinReplicate(env *Env, args []*Value) *Value {
	n, lerr := argInt(args, 1)
	if lerr != nil {
		return lerr
	}
	if limit := env.Runtime.maxAlloc(); n > limit {
		return Errorf(CondInvalidArgument, "count %d exceeds allocation limit %d", n, limit)
	}
	return listOrError(seq.Replicate(args[0], n))
}

func seqSum(env *Env, cells []*Value) *Value {
	for i, c := range cells {
		if !c.IsNumeric() {
			return Errorf(CondTypeError, "element %d: expected number, got %v", i, c.Type)
		}
	}
	isInt := func(v *Value) bool { return v.Type == TInt }
	if seq.CountFunc(isInt, cells) == len(cells) {
		return Int(seq.Sum(seq.Map(func(v *Value) int64 { return v.Int }, cells)))
	}
	return Float(seq.Sum(seq.Map((*Value).float, cells)))
}

func seqReverse(env *Env, cells []*Value) *Value {
	return List(seq.Reverse(cells))
}

func builtinListEqual(env *Env, args []*Value) *Value {
	a, b, lerr := twoLists(args)
	if lerr != nil {
		return lerr
	}
	return Bool(seq.EqualFunc(a, b, Equal))
}

func builtinFilter(env *Env, args []*Value) *Value {
	pred, lerr := argFun(args, 0)
	if lerr != nil {
		return lerr
	}
	cells, lerr := argList(args, 1)
	if lerr != nil {
		return lerr
	}
	return listOrError(seq.TryFilter(callPredicate(env, pred), cells))
}

func builtinMap(env *Env, args []*Value) *Value {
	fn, lerr := argFun(args, 0)
	if lerr != nil {
		return lerr
	}
	cells, lerr := argList(args, 1)
	if lerr != nil {
		return lerr
	}
	return listOrError(seq.TryMap(callUnary(env, fn), cells))
}

func builtinCount(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 1)
	if lerr != nil {
		return lerr
	}
	el := args[0]
	return Int(int64(seq.CountFunc(func(x *Value) bool { return Equal(x, el) }, cells)))
}

func builtinFoldl(env *Env, args []*Value) *Value {
	fn, lerr := argFun(args, 0)
	if lerr != nil {
		return lerr
	}
	cells, lerr := argList(args, 2)
	if lerr != nil {
		return lerr
	}
	call := binary(env, fn)
	return valueOrError(seq.TryFoldl(func(acc, x *Value) (*Value, error) {
		r := call(acc, x)
		return r, GoError(r)
	}, args[1], cells))
}

func builtinFoldr(env *Env, args []*Value) *Value {
	fn, lerr := argFun(args, 0)
	if lerr != nil {
		return lerr
	}
	cells, lerr := argList(args, 2)
	if lerr != nil {
		return lerr
	}
	call := binary(env, fn)
	return seq.Foldr(func(x, acc *Value) *Value {
		if acc.Type == TError {
			return acc
		}
		return call(x, acc)
	}, args[1], cells)
}

func seqPalindrome(env *Env, cells []*Value) *Value {
	return Bool(seq.IsPalindromeFunc(cells, Equal))
}

func seqSortedAsc(env *Env, cells []*Value) *Value {
	return Bool(seq.IsSortedAscFunc(cells, compareChecked))
}

func seqSortedDesc(env *Env, cells []*Value) *Value {
	return Bool(seq.IsSortedDescFunc(cells, compareChecked))
}

func seqMax(env *Env, cells []*Value) *Value {
	return valueOrError(seq.MaxFunc(cells, compareChecked))
}

func seqMin(env *Env, cells []*Value) *Value {
	return valueOrError(seq.MinFunc(cells, compareChecked))
}

func intOrError(i int, err error) *Value {
	if err != nil {
		return ErrorFromGo(err)
	}
	return Int(int64(i))
}

func seqIndexMax(env *Env, cells []*Value) *Value {
	return intOrError(seq.IndexMaxFunc(cells, compareChecked))
}

func seqIndexMin(env *Env, cells []*Value) *Value {
	return intOrError(seq.IndexMinFunc(cells, compareChecked))
}

func seqSelectionSort(env *Env, cells []*Value) *Value {
	return List(seq.SelectionSortFunc(cells, compareChecked))
}

func seqInsertionSort(env *Env, cells []*Value) *Value {
	return List(seq.InsertionSortFunc(cells, compareChecked))
}

func seqBubbleSort(env *Env, cells []*Value) *Value {
	return List(seq.BubbleSortFunc(cells, compareChecked))
}

func builtinEveryNth(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 0)
	if lerr != nil {
		return lerr
	}
	n, lerr := argInt(args, 1)
	if lerr != nil {
		return lerr
	}
	return listOrError(seq.EveryNth(cells, n))
}

func seqEverySecond(env *Env, cells []*Value) *Value {
	return List(seq.EverySecond(cells))
}

func builtinSwap(env *Env, args []*Value) *Value {
	cells, lerr := argList(args, 0)
	if lerr != nil {
		return lerr
	}
	i, lerr := argInt(args, 1)
	if lerr != nil {
		return lerr
	}
	j, lerr := argInt(args, 2)
	if lerr != nil {
		return lerr
	}
	return listOrError(seq.Swap(cells, i, j))
}

func seqCombineDigits(env *Env, cells []*Value) *Value {
	digits, lerr := ints(cells)
	if lerr != nil {
		return lerr
	}
	return intOrError(seq.CombineDigits(digits))
}

func seqAllPrimes(env *Env, cells []*Value) *Value {
	ns, lerr := ints(cells)
	if lerr != nil {
		return lerr
	}
	return Bool(seq.AllPrimes(ns))
}

func seqRunLength(env *Env, cells []*Value) *Value {
	runs := seq.RunLengthFunc(cells, Equal)
	return List(seq.Map(func(r seq.Run[*Value]) *Value {
		return List([]*Value{r.Value, Int(int64(r.Count))})
	}, runs))
}

func seqRunLengthDecode(env *Env, cells []*Value) *Value {
	runs := make([]seq.Run[*Value], len(cells))
	for i, c := range cells {
		if c.Type != TList || len(c.Cells) != 2 || c.Cells[1].Type != TInt {
			return Errorf(CondTypeError, "element %d: expected [value count], got %v", i, c)
		}
		runs[i] = seq.Run[*Value]{Value: c.Cells[0], Count: int(c.Cells[1].Int)}
	}
	// Counts are checked against the remaining budget so the sum cannot wrap.
	limit := env.Runtime.maxAlloc()
	total := 0
	for _, r := range runs {
		if r.Count <= 0 {
			continue
		}
		if r.Count > limit-total {
			return Errorf(CondInvalidArgument, "decoded length exceeds allocation limit %d", limit)
		}
		total += r.Count
	}
	return listOrError(seq.RunLengthDecode(runs))
}

func builtinMatMultiply(env *Env, args []*Value) *Value {
	a, lerr := matrix(args, 0)
	if lerr != nil {
		return lerr
	}
	b, lerr := matrix(args, 1)
	if lerr != nil {
		return lerr
	}
	isInt := func(v *Value) bool { return v.Type == TInt }
	allInts := func(m [][]*Value) bool {
		return seq.CountFunc(func(row []*Value) bool { return seq.CountFunc(isInt, row) == len(row) }, m) == len(m)
	}
	if allInts(a) && allInts(b) {
		toInt := func(v *Value) int64 { return v.Int }
		p, err := seq.MatMultiply(mapMatrix(a, toInt), mapMatrix(b, toInt))
		if err != nil {
			return ErrorFromGo(err)
		}
		return matrixValue(p, Int)
	}
	p, err := seq.MatMultiply(mapMatrix(a, (*Value).float), mapMatrix(b, (*Value).float))
	if err != nil {
		return ErrorFromGo(err)
	}
	return matrixValue(p, Float)
}

// matrix extracts a list of rows of numbers.
func matrix(args []*Value, i int) ([][]*Value, *Value) {
	rows, lerr := argList(args, i)
	if lerr != nil {
		return nil, lerr
	}
	m := make([][]*Value, len(rows))
	for r, row := range rows {
		if row.Type != TList {
			return nil, Errorf(CondTypeError, "argument %d: row %d is not a list", i+1, r)
		}
		for c, x := range row.Cells {
			if !x.IsNumeric() {
				return nil, Errorf(CondTypeError, "argument %d: element [%d %d] is not a number", i+1, r, c)
			}
		}
		m[r] = row.Cells
	}
	return m, nil
}

func mapMatrix[N any](m [][]*Value, fn func(*Value) N) [][]N {
	return seq.Map(func(row []*Value) []N { return seq.Map(fn, row) }, m)
}

func matrixValue[N any](m [][]N, fn func(N) *Value) *Value {
	return List(seq.Map(func(row []N) *Value { return List(seq.Map(fn, row)) }, m))
}
