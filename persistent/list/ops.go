package list

import (
	"strconv"
	"strings"
)

// Append returns a new list with x after all elements of l.
func Append[A any](l List[A], x A) List[A] {
	return FoldRight(l, Cons(x, Nil[A]()), Cons[A])
}

// AppendViaFoldLeft is Append built from FoldLeft only: it conses x onto the
// reversed list and reverses the result. Stack usage is constant.
func AppendViaFoldLeft[A any](l List[A], x A) List[A] {
	prepend := func(acc List[A], y A) List[A] {
		return Cons(y, acc)
	}
	reversed := FoldLeft(l, Nil[A](), prepend)
	return FoldLeft(Cons(x, reversed), Nil[A](), prepend)
}

// Concat flattens a list of lists, preserving the order of elements.
func Concat[A any](ls List[List[A]]) List[A] {
	return FoldLeft(ls, Nil[A](), func(acc List[A], l List[A]) List[A] {
		return FoldLeft(l, acc, Append[A])
	})
}

// Map applies f to every element of l.
func Map[A, B any](l List[A], f func(A) B) List[B] {
	return FoldRight(l, Nil[B](), func(x A, acc List[B]) List[B] {
		return Cons(f(x), acc)
	})
}

// Filter returns the elements of l satisfying keep, in order.
func Filter[A any](l List[A], keep func(A) bool) List[A] {
	return FoldRight(l, Nil[A](), func(x A, acc List[A]) List[A] {
		if keep(x) {
			return Cons(x, acc)
		}
		return acc
	})
}

// FlatMap maps every element of l to a list and concatenates the results.
func FlatMap[A, B any](l List[A], f func(A) List[B]) List[B] {
	return Concat(Map(l, f))
}

// FilterViaFlatMap has the same result as Filter.
func FilterViaFlatMap[A any](l List[A], keep func(A) bool) List[A] {
	return FlatMap(l, func(x A) List[A] {
		if keep(x) {
			return Of(x)
		}
		return Nil[A]()
	})
}

// ZipWith combines elements of a and b pairwise. The result has the length of
// the shorter input.
func ZipWith[A, B, C any](a List[A], b List[B], f func(A, B) C) List[C] {
	var zs []C
	for a.cell != nil && b.cell != nil {
		zs = append(zs, f(a.cell.head, b.cell.head))
		a, b = a.cell.tail, b.cell.tail
	}
	return FromSlice(zs)
}

// Drop removes the first n elements of l. The remainder is shared with l.
func Drop[A any](l List[A], n int) List[A] {
	for ; n > 0 && l.cell != nil; n-- {
		l = l.cell.tail
	}
	return l
}

// DropWhile removes the longest prefix of l whose elements satisfy p.
// The remainder is shared with l.
func DropWhile[A any](l List[A], p func(A) bool) List[A] {
	for l.cell != nil && p(l.cell.head) {
		l = l.cell.tail
	}
	return l
}

// Init returns all elements of l except the last one. Init of an empty or
// single-element list is the empty list.
func Init[A any](l List[A]) List[A] {
	var rev List[A]
	for c := l.cell; c != nil && c.tail.cell != nil; c = c.tail.cell {
		rev = Cons(c.head, rev)
	}
	return Reverse(rev)
}

// --- Numeric lists ---------------------------------------------------------

// Number is the set of types Sum and IncAll operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds all elements of l.
func Sum[N Number](l List[N]) N {
	return FoldLeft(l, N(0), func(acc N, x N) N {
		return acc + x
	})
}

// IncAll adds 1 to every element of l.
func IncAll[N Number](l List[N]) List[N] {
	return FoldRight(l, Nil[N](), func(x N, acc List[N]) List[N] {
		return Cons(x+1, acc)
	})
}

// DoublesToStrings formats every element of l in shortest decimal notation
// with at least one fractional digit, e.g. 1 → "1.0".
func DoublesToStrings(l List[float64]) List[string] {
	return FoldRight(l, Nil[string](), func(x float64, acc List[string]) List[string] {
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.ContainsAny(s, ".NI") { // NaN and ±Inf stay as they are
			s += ".0"
		}
		return Cons(s, acc)
	})
}
