package tree

import (
	"cmp"
	"fmt"

	"github.com/p14n/fp/persistent/list"
)

// Tree is an immutable binary tree with values of type A at its leaves.
// Trees are created with Leaf and Branch only.
type Tree[A any] interface {
	Match() Matcher[A]
	String() string
	isTree()
}

type leaf[A any] struct {
	value A
}

type branch[A any] struct {
	left, right Tree[A]
}

func (leaf[A]) isTree()   {}
func (branch[A]) isTree() {}

// Leaf creates a tree consisting of a single value.
func Leaf[A any](value A) Tree[A] {
	return leaf[A]{value: value}
}

// Branch creates a tree with sub-trees left and right. Both have to be non-nil.
func Branch[A any](left, right Tree[A]) Tree[A] {
	assertThat(left != nil && right != nil, "branch needs two sub-trees")
	return branch[A]{left: left, right: right}
}

func (l leaf[A]) String() string {
	return Render[A](l)
}

func (b branch[A]) String() string {
	return Render[A](b)
}

// --- Fold ------------------------------------------------------------------

// Fold reduces t to a single value: every leaf is replaced by onLeaf(value),
// every branch by onBranch of its folded left and right sub-trees.
func Fold[A, B any](t Tree[A], onLeaf func(A) B, onBranch func(B, B) B) B {
	switch node := t.(type) {
	case leaf[A]:
		return onLeaf(node.value)
	case branch[A]:
		return onBranch(Fold(node.left, onLeaf, onBranch), Fold(node.right, onLeaf, onBranch))
	}
	panic(fmt.Sprintf("persistent.tree: cannot fold %#v", t))
}

// Size counts the leaves and branches of t.
func Size[A any](t Tree[A]) int {
	return Fold(t, func(A) int { return 1 }, func(a, b int) int {
		return a + b + 1
	})
}

// Max returns the largest value held by t.
func Max[A cmp.Ordered](t Tree[A]) A {
	return Fold(t, func(v A) A { return v }, func(a, b A) A {
		return max(a, b)
	})
}

// Depth returns the length of the longest path from the root of t to a leaf,
// counting nodes. A single leaf has depth 1.
func Depth[A any](t Tree[A]) int {
	return Fold(t, func(A) int { return 1 }, func(a, b int) int {
		return 1 + max(a, b)
	})
}

// Map applies f to every value of t, preserving the shape of t.
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	return Fold(t, func(v A) Tree[B] { return Leaf(f(v)) }, Branch[B])
}

// Leaves lists the values of t from left to right.
func Leaves[A any](t Tree[A]) list.List[A] {
	return Fold(t, func(v A) list.List[A] { return list.Of(v) }, func(l, r list.List[A]) list.List[A] {
		return list.FoldRight(l, r, list.Cons[A])
	})
}

// --- Equality --------------------------------------------------------------

// Equal reports whether a and b have the same shape and equal values.
func Equal[A comparable](a, b Tree[A]) bool {
	return EqualFunc(a, b, func(x, y A) bool { return x == y })
}

// EqualFunc is Equal with a client-provided value comparison.
func EqualFunc[A any](a, b Tree[A], eq func(A, A) bool) bool {
	switch x := a.(type) {
	case leaf[A]:
		y, ok := b.(leaf[A])
		return ok && eq(x.value, y.value)
	case branch[A]:
		y, ok := b.(branch[A])
		return ok && EqualFunc(x.left, y.left, eq) && EqualFunc(x.right, y.right, eq)
	}
	return false
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to deconstruct trees.
type Matcher[A any] interface {
	Leaf(*A) Matcher[A]
	Branch(*Tree[A], *Tree[A]) Matcher[A]
}

type matcher[A any] struct {
	t Tree[A]
}

func (l leaf[A]) Match() Matcher[A] {
	return &matcher[A]{t: l}
}

func (b branch[A]) Match() Matcher[A] {
	return &matcher[A]{t: b}
}

func (tm *matcher[A]) Leaf(v *A) Matcher[A] {
	if l, ok := tm.t.(leaf[A]); ok {
		*v = l.value
		return tm
	}
	return nil
}

func (tm *matcher[A]) Branch(left, right *Tree[A]) Matcher[A] {
	if b, ok := tm.t.(branch[A]); ok {
		*left, *right = b.left, b.right
		return tm
	}
	return nil
}
