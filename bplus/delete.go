package bplus

import (
	"cmp"
	"slices"
)

// Delete removes key from the tree, using fanout order for occupancy bounds.
//
// Deleting a key not present is a no-op. Delete fails only for an invalid
// order, or an order different from the one of a non-empty tree.
func (t *Tree[K]) Delete(order int, key K) error {
	if t == nil {
		return ErrNilTree
	}
	if err := t.checkOrder(order); err != nil {
		return err
	}
	if t.head == nil {
		return nil
	}
	path := newDescent[K](t.height)
	defer path.clear()
	leaf := t.descend(key, path)
	pos, found := slices.BinarySearch(leaf.keys, key)
	if !found {
		return nil
	}
	leaf.keys = slices.Delete(leaf.keys, pos, pos+1)
	t.length--
	if path.isEmpty() { // sole leaf, no occupancy bound
		if len(leaf.keys) == 0 {
			tracer().Debugf("bplus: last key deleted, tree is empty")
			t.reset()
		}
		return nil
	}
	if len(leaf.keys) >= minLeafKeys(order) {
		return nil
	}
	parent := t.rebalanceLeaf(path, leaf, order)
	if parent != nil {
		t.rebalanceInner(path, parent, order)
	}
	return nil
}

// rebalanceLeaf repairs an underfull leaf, either by borrowing one key from
// its best sibling or by merging with it. After a merge the parent has lost
// one separator and is returned for further repair; otherwise the return
// value is nil.
func (t *Tree[K]) rebalanceLeaf(path *descent[K], leaf *leafNode[K], order int) *innerNode[K] {
	parent, slot, ok := path.pop()
	assertThat(ok, "rebalanceLeaf called without a parent on the path")
	b := bestSibling(parent, slot)
	sibling := parent.children[b].(*leafNode[K])
	if len(sibling.keys) > minLeafKeys(order) {
		if b < slot {
			last := len(sibling.keys) - 1
			leaf.keys = slices.Insert(leaf.keys, 0, sibling.keys[last])
			sibling.keys = slices.Delete(sibling.keys, last, last+1)
			parent.keys[slot-1] = sibling.keys[last-1]
		} else {
			leaf.keys = append(leaf.keys, sibling.keys[0])
			sibling.keys = slices.Delete(sibling.keys, 0, 1)
			parent.keys[slot] = leaf.keys[len(leaf.keys)-1]
		}
		tracer().Debugf("bplus: leaf borrowed a key from sibling at slot %d", b)
		return nil
	}
	if b < slot {
		mergeLeaves(sibling, leaf)
		removeSlot(parent, slot-1, slot)
	} else {
		mergeLeaves(leaf, sibling)
		removeSlot(parent, slot, slot+1)
	}
	tracer().Debugf("bplus: merged leaves at slots %d and %d", min(b, slot), max(b, slot))
	return parent
}

// mergeLeaves appends the keys of right to left and unlinks right from the
// sequence set.
func mergeLeaves[K cmp.Ordered](left, right *leafNode[K]) {
	assertThat(left.next == right, "mergeLeaves called for leaves which are not adjacent")
	left.keys = append(left.keys, right.keys...)
	left.next = right.next
	right.keys = nil
	right.next = nil
}

// rebalanceInner walks up the recorded path, starting at node, which has just
// lost a separator. It stops at the first node within its occupancy bounds.
// An underfull node borrows a separator and a child from its best sibling,
// rotating through the parent, or is merged with it, pulling the separator
// down from the parent. A root left without separators is replaced by its
// only child.
func (t *Tree[K]) rebalanceInner(path *descent[K], node *innerNode[K], order int) {
	for {
		if path.isEmpty() { // node is the root
			if len(node.keys) == 0 {
				t.collapseRoot(node)
			}
			return
		}
		if len(node.keys) >= minInnerKeys(order) {
			return
		}
		parent, slot, _ := path.pop()
		b := bestSibling(parent, slot)
		sibling := parent.children[b].(*innerNode[K])
		if len(sibling.keys) > minInnerKeys(order) {
			if b < slot {
				lastKey, lastChild := len(sibling.keys)-1, len(sibling.children)-1
				node.keys = slices.Insert(node.keys, 0, parent.keys[slot-1])
				node.children = slices.Insert(node.children, 0, sibling.children[lastChild])
				parent.keys[slot-1] = sibling.keys[lastKey]
				sibling.keys = slices.Delete(sibling.keys, lastKey, lastKey+1)
				sibling.children = slices.Delete(sibling.children, lastChild, lastChild+1)
			} else {
				node.keys = append(node.keys, parent.keys[slot])
				node.children = append(node.children, sibling.children[0])
				parent.keys[slot] = sibling.keys[0]
				sibling.keys = slices.Delete(sibling.keys, 0, 1)
				sibling.children = slices.Delete(sibling.children, 0, 1)
			}
			tracer().Debugf("bplus: inner node borrowed from sibling at slot %d", b)
			return
		}
		if b < slot {
			mergeInner(sibling, parent.keys[slot-1], node)
			removeSlot(parent, slot-1, slot)
		} else {
			mergeInner(node, parent.keys[slot], sibling)
			removeSlot(parent, slot, slot+1)
		}
		tracer().Debugf("bplus: merged inner nodes at slots %d and %d", min(b, slot), max(b, slot))
		node = parent
	}
}

// mergeInner appends separator and then the content of right to left.
func mergeInner[K cmp.Ordered](left *innerNode[K], separator K, right *innerNode[K]) {
	left.keys = append(left.keys, separator)
	left.keys = append(left.keys, right.keys...)
	left.children = append(left.children, right.children...)
	right.keys = nil
	right.children = nil
}

// removeSlot drops separator keys[sep] and the child at child from node.
func removeSlot[K cmp.Ordered](node *innerNode[K], sep, child int) {
	node.keys = slices.Delete(node.keys, sep, sep+1)
	node.children = slices.Delete(node.children, child, child+1)
}

// collapseRoot replaces a root without separators by its only child,
// shrinking the tree by one level.
func (t *Tree[K]) collapseRoot(root *innerNode[K]) {
	assertThat(len(root.children) == 1, "collapseRoot called for root with more than one child")
	switch child := root.children[0].(type) {
	case *innerNode[K]:
		t.root = child
	case *leafNode[K]:
		assertThat(child == t.head, "collapseRoot: remaining leaf is not the sequence set head")
		t.root = nil
	default:
		panic("unknown tree node type")
	}
	root.children = nil
	t.height--
	tracer().Debugf("bplus: root collapsed, height is now %d", t.height)
}
