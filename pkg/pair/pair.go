// Package pair provides a small generic two-value container.
//
// Pair itself places no constraint on its element type; the comparison
// helpers are separate free functions constrained to ordered element types,
// so ordering-based behavior is only available when the elements support it.
package pair

import (
	"cmp"
	"fmt"
)

// Pair holds two values of the same type.
type Pair[T any] struct {
	X T
	Y T
}

// New returns a Pair holding x and y.
func New[T any](x, y T) Pair[T] {
	return Pair[T]{X: x, Y: y}
}

// Values returns both members in declaration order.
func (p Pair[T]) Values() (T, T) {
	return p.X, p.Y
}

// Swap returns a copy of the pair with the members exchanged.
func (p Pair[T]) Swap() Pair[T] {
	return Pair[T]{X: p.Y, Y: p.X}
}

// Largest returns the larger member. Ties resolve to X.
func Largest[T cmp.Ordered](p Pair[T]) T {
	if p.X >= p.Y {
		return p.X
	}
	return p.Y
}

// LargestLabel reports which member is the larger one, "x" or "y".
// Ties resolve to "x".
func LargestLabel[T cmp.Ordered](p Pair[T]) string {
	if p.X >= p.Y {
		return "x"
	}
	return "y"
}

// CompareDisplay returns a display line naming the larger member,
// e.g. "The largest member is x= 5". Ties resolve to x.
func CompareDisplay[T cmp.Ordered](p Pair[T]) string {
	if p.X >= p.Y {
		return fmt.Sprintf("The largest member is x= %v", p.X)
	}
	return fmt.Sprintf("The largest member is y= %v", p.Y)
}
