/*
Package list implements an immutable persistent singly-linked list.

A list is either empty (Nil) or a head value followed by a tail list (Cons).
Lists are never modified after construction. Every operation returning a list
creates a new one, sharing cells with its input where possible: Drop, DropWhile
and Tail return suffixes of the input without copying, and Cons reuses its tail.
Lists are inherently safe for concurrent readers.

The zero value of List is the empty list:

	var l list.List[int]          // []
	l = list.Cons(1, l)           // [1]
	l = list.Of(1, 2, 3)          // [1, 2, 3]

Operations are derived from two traversal primitives. FoldRight combines
elements right to left and recurses, using call stack proportional to the
length of the list; operations built on it (Length, Append, Map, Filter,
FlatMap) inherit this. FoldLeft is a loop with constant stack usage; where
stack depth matters, FoldRightSafe performs a right fold on top of it.

Pattern matching on lists:

	var h int
	var t list.List[int]
	switch m := l.Match(); m {
	case m.Cons(&h, &t):
		// non-empty
	case m.Nil():
		// empty
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		panic(msg)
	}
}
