// Copyright © 2024 The ELPS authors

/*
Package seq implements pure functions over finite ordered sequences.

Sequences are plain Go slices.  Every function is defined by structural
recursion: it inspects the head of a sequence (s[0]) and recurses on the tail
(s[1:]) until the empty sequence is reached.  Functions which produce a
sequence always allocate fresh storage and never write to their arguments, so
callers may keep using the inputs after a call.

Operations that cannot produce a value return an error wrapping one of the
package sentinels:

	v, err := seq.Nth([]int{10, 20, 30}, 3)
	if errors.Is(err, seq.ErrIndexOutOfRange) {
		// ...
	}

Functions that compare elements come in two flavors.  The plain form requires
a comparable (or ordered) element type.  The Func form takes an explicit
equality or comparison function so that sequences of non-comparable values
can be processed as well.
*/
package seq
