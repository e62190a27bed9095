package list

import (
	"errors"
	"fmt"
	"strings"

	"github.com/p14n/fp"
	"github.com/p14n/fp/maybe"
	"github.com/p14n/fp/result"
)

// ErrEmptyList is returned when deconstructing an empty list.
var ErrEmptyList = errors.New("operation on empty list")

// List is an immutable singly-linked list. The zero value is the empty list.
type List[A any] struct {
	cell *cell[A] // nil for Nil
}

type cell[A any] struct {
	head A
	tail List[A]
}

// Nil returns the empty list.
func Nil[A any]() List[A] {
	return List[A]{}
}

// Cons creates a list with head h, followed by t. t is shared, not copied.
func Cons[A any](h A, t List[A]) List[A] {
	return List[A]{cell: &cell[A]{head: h, tail: t}}
}

// Of creates a list of xs, in order.
func Of[A any](xs ...A) List[A] {
	return FromSlice(xs)
}

// FromSlice creates a list of the elements of xs, in order.
func FromSlice[A any](xs []A) List[A] {
	var l List[A]
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// IsEmpty is true for Nil.
func (l List[A]) IsEmpty() bool {
	return l.cell == nil
}

// Head returns the first element of l. For an empty list an error wrapping
// ErrEmptyList is returned.
func (l List[A]) Head() (A, error) {
	if l.cell == nil {
		var zero A
		tracer().Debugf("attempt to take head of empty list")
		return zero, fmt.Errorf("head: %w", ErrEmptyList)
	}
	return l.cell.head, nil
}

// Tail returns l without its first element. For an empty list an error wrapping
// ErrEmptyList is returned.
func (l List[A]) Tail() (List[A], error) {
	if l.cell == nil {
		tracer().Debugf("attempt to take tail of empty list")
		return l, fmt.Errorf("tail: %w", ErrEmptyList)
	}
	return l.cell.tail, nil
}

// First returns the head of l, if any.
func (l List[A]) First() maybe.Maybe[A] {
	if l.cell == nil {
		return maybe.Nothing[A]()
	}
	return maybe.Just(l.cell.head)
}

// Uncons splits l into head and tail.
func Uncons[A any](l List[A]) result.Result[fp.Pair[A, List[A]]] {
	if l.cell == nil {
		return result.Err[fp.Pair[A, List[A]]](fmt.Errorf("uncons: %w", ErrEmptyList))
	}
	return result.Ok(fp.P(l.cell.head, l.cell.tail))
}

// SetHead replaces the first element of l by x, sharing the tail.
// For an empty list, SetHead returns [x].
func SetHead[A any](l List[A], x A) List[A] {
	if l.cell == nil {
		return Cons(x, l)
	}
	return Cons(x, l.cell.tail)
}

// ToSlice copies the elements of l into a new slice.
func (l List[A]) ToSlice() []A {
	return FoldLeft(l, []A(nil), func(xs []A, x A) []A {
		return append(xs, x)
	})
}

func (l List[A]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for c := l.cell; c != nil; c = c.tail.cell {
		if c != l.cell {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", c.head))
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b contain equal elements in the same order.
func Equal[A comparable](a, b List[A]) bool {
	return EqualFunc(a, b, func(x, y A) bool { return x == y })
}

// EqualFunc is Equal with a client-provided element comparison.
func EqualFunc[A any](a, b List[A], eq func(A, A) bool) bool {
	for a.cell != nil && b.cell != nil {
		if a.cell == b.cell { // shared suffix
			return true
		}
		if !eq(a.cell.head, b.cell.head) {
			return false
		}
		a, b = a.cell.tail, b.cell.tail
	}
	return a.cell == nil && b.cell == nil
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for discriminating Nil from Cons in switch statements.
func (l List[A]) Match() Matcher[A] {
	return &matcher[A]{l: l}
}

// Matcher is used in switch statements to deconstruct lists.
type Matcher[A any] interface {
	Cons(*A, *List[A]) Matcher[A]
	Nil() Matcher[A]
}

type matcher[A any] struct {
	l List[A]
}

func (lm *matcher[A]) Cons(h *A, t *List[A]) Matcher[A] {
	if lm.l.cell == nil {
		return nil
	}
	assertThat(h != nil && t != nil, "Cons matcher needs non-nil targets")
	*h, *t = lm.l.cell.head, lm.l.cell.tail
	return lm
}

func (lm *matcher[A]) Nil() Matcher[A] {
	if lm.l.cell == nil {
		return lm
	}
	return nil
}
