/*
Package tree implements an immutable persistent binary tree.

A tree is either a Leaf holding a single value or a Branch holding two
sub-trees. There is no empty tree: every tree holds at least one leaf, and
Branch refuses missing children. Trees are never modified after construction;
sub-trees may be shared freely between trees.

	t := tree.Branch(tree.Leaf(1), tree.Branch(tree.Leaf(2), tree.Leaf(3)))

All operations of this package are derived from Fold, which replaces every
leaf by the result of a leaf function and every branch by the combination of
its folded children:

	Size   = Fold(t, 1, a+b+1)
	Max    = Fold(t, v, max(a,b))
	Depth  = Fold(t, 1, 1+max(a,b))
	Map    = Fold(t, Leaf(f(v)), Branch(a,b))

Fold recurses once per level of the tree.

Trees with comparable payloads may be compared with ==, which compares them
structurally. Equal and EqualFunc do the same without requiring comparable
payloads for EqualFunc.

Pattern matching on trees:

	var v int
	var l, r tree.Tree[int]
	switch m := t.Match(); m {
	case m.Leaf(&v):
	case m.Branch(&l, &r):
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.tree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.tree: "+msg, msgargs...)
		tracer().Errorf("%s", msg)
		panic(msg)
	}
}
