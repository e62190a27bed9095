package fp

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a product of two values.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair (x, y).
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns both components of a pair.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// Swap returns (y, x) for a pair (x, y).
func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return Pair[B, A]{p.Right, p.Left}
}
