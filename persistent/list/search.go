package list

import "github.com/p14n/fp"

// HasSubsequence reports whether the elements of sub occur contiguously and in
// order somewhere in l. The empty list is a subsequence of every list.
func HasSubsequence[A comparable](l, sub List[A]) bool {
	return HasSubsequenceFunc(l, sub, func(x, y A) bool { return x == y })
}

// HasSubsequenceFunc is HasSubsequence with a client-provided element comparison.
//
// Every position of l is tried as the start of a match; a failed attempt
// moves on to the next position. Runs in constant space.
func HasSubsequenceFunc[A any](l, sub List[A], eq func(A, A) bool) bool {
	if sub.cell == nil {
		return true
	}
	for ; l.cell != nil; l = l.cell.tail {
		if hasPrefix(l, sub, eq) {
			return true
		}
	}
	return false
}

// hasPrefix reports whether l starts with the elements of prefix.
func hasPrefix[A any](l, prefix List[A], eq func(A, A) bool) bool {
	for prefix.cell != nil {
		if l.cell == nil || !eq(l.cell.head, prefix.cell.head) {
			return false
		}
		l, prefix = l.cell.tail, prefix.cell.tail
	}
	return true
}

// Zip pairs up elements of a and b, truncating at the shorter list.
func Zip[A, B any](a List[A], b List[B]) List[fp.Pair[A, B]] {
	return ZipWith(a, b, fp.P[A, B])
}

// IsSorted reports whether every pair of neighbouring elements (x, y) of l
// satisfies ordered(x, y). Empty and single-element lists are sorted.
func IsSorted[A any](l List[A], ordered func(A, A) bool) bool {
	for !l.IsEmpty() {
		rest, _ := l.Tail()
		if rest.IsEmpty() {
			break
		}
		x, _ := l.Head()
		y, _ := rest.Head()
		if !ordered(x, y) {
			return false
		}
		l = rest
	}
	return true
}
