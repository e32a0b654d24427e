package bplus

import "fmt"

// MinOrder is the smallest supported fanout order.
//
// With order 2 an internal node could legally shrink to a single child,
// leaving an underfull neighbour without a sibling to borrow from or merge
// with.
const MinOrder = 3

// minLeafKeys is the lower occupancy bound for non-root leaves.
func minLeafKeys(order int) int {
	return (order + 1) / 2
}

// minInnerKeys is the lower occupancy bound for non-root internal nodes.
func minInnerKeys(order int) int {
	return (order - 1) / 2
}

// ValidateOrder checks that order satisfies the occupancy math.
func ValidateOrder(order int) error {
	if order < MinOrder {
		return fmt.Errorf("%w: order %d, must be at least %d", ErrInvalidOrder, order, MinOrder)
	}
	return nil
}

// checkOrder validates order for a call on t.
func (t *Tree[K]) checkOrder(order int) error {
	if err := ValidateOrder(order); err != nil {
		return err
	}
	if t.order != 0 && t.order != order {
		return fmt.Errorf("%w: tree has order %d, call uses %d", ErrOrderMismatch, t.order, order)
	}
	return nil
}
