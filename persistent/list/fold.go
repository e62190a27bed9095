package list

// FoldRight combines the elements of l from right to left:
//
//	FoldRight([x1, x2, …, xn], z, f) = f(x1, f(x2, … f(xn, z)))
//
// FoldRight recurses once per element.
func FoldRight[A, B any](l List[A], z B, f func(A, B) B) B {
	if l.cell == nil {
		return z
	}
	return f(l.cell.head, FoldRight(l.cell.tail, z, f))
}

// FoldLeft combines the elements of l from left to right:
//
//	FoldLeft([x1, x2, …, xn], z, f) = f(… f(f(z, x1), x2) …, xn)
//
// FoldLeft runs in constant stack space.
func FoldLeft[A, B any](l List[A], z B, f func(B, A) B) B {
	acc := z
	for c := l.cell; c != nil; c = c.tail.cell {
		acc = f(acc, c.head)
	}
	return acc
}

// FoldRightSafe computes the same result as FoldRight, but in constant stack
// space, at the cost of an intermediate reversed copy of l.
func FoldRightSafe[A, B any](l List[A], z B, f func(A, B) B) B {
	return FoldLeft(Reverse(l), z, func(acc B, x A) B {
		return f(x, acc)
	})
}

// Reverse returns the elements of l in reverse order.
func Reverse[A any](l List[A]) List[A] {
	return FoldLeft(l, Nil[A](), func(acc List[A], x A) List[A] {
		return Cons(x, acc)
	})
}

// Length returns the number of elements of l.
func Length[A any](l List[A]) int {
	return FoldRight(l, 0, func(_ A, n int) int {
		return n + 1
	})
}
