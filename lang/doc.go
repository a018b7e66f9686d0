// Copyright © 2024 The ELPS authors

/*
Package lang is a small s-expression language for experimenting with the
sequence library interactively.

Source text is read into values by a Reader (see package parser).  A list
literal [1 2 3] reads as a call to the list builtin, (f x y) is a function
call and 'x is shorthand for (quote x).  The special forms are quote, if,
define and lambda.  Every other name resolves to a user definition or to a
builtin in the runtime's Registry.

	(filter nonneg? [1 2 3 4 -3 22 -7 2])  ; [1 2 3 4 22 2]
	((curry +) 2)                          ; a function adding two
	(nth [10 20 30] 3)                     ; index-out-of-range error

Errors are first class values.  Evaluation of an expression stops at the
first error, which is returned to the caller.  GoError converts an error
value into a Go error.
*/
package lang
