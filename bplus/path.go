package bplus

import (
	"cmp"

	"github.com/npillmayer/keyset/pathstack"
)

// descent records the inner nodes visited from the root down to a leaf,
// together with the child slot taken at each of them. Both stacks are
// always pushed and popped together.
type descent[K cmp.Ordered] struct {
	nodes *pathstack.Stack[*innerNode[K]]
	slots *pathstack.Stack[int]
}

func newDescent[K cmp.Ordered](depth int) *descent[K] {
	return &descent[K]{
		nodes: pathstack.New[*innerNode[K]](depth),
		slots: pathstack.New[int](depth),
	}
}

func (d *descent[K]) push(node *innerNode[K], slot int) {
	d.nodes.Push(node)
	d.slots.Push(slot)
}

// pop returns the parent visited last and the slot of the child taken there.
func (d *descent[K]) pop() (*innerNode[K], int, bool) {
	node, ok := d.nodes.Pop()
	slot, sok := d.slots.Pop()
	assertThat(ok == sok, "descent: node and slot stacks out of sync")
	return node, slot, ok
}

func (d *descent[K]) isEmpty() bool {
	return d.nodes.IsEmpty()
}

func (d *descent[K]) clear() {
	d.nodes.Clear()
	d.slots.Clear()
}
