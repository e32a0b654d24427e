package bplus

import (
	"cmp"
	"slices"
)

// Insert adds key to the tree, using fanout order for node capacities.
//
// Inserting a key already present is a no-op. Insert fails only for an
// invalid order, or an order different from the one of a non-empty tree.
func (t *Tree[K]) Insert(order int, key K) error {
	if t == nil {
		return ErrNilTree
	}
	if err := t.checkOrder(order); err != nil {
		return err
	}
	if t.head == nil {
		leaf := newLeaf[K](order)
		leaf.keys = append(leaf.keys, key)
		t.head = leaf
		t.order = order
		t.length = 1
		t.height = 1
		return nil
	}
	path := newDescent[K](t.height)
	defer path.clear()
	leaf := t.descend(key, path)
	pos, found := slices.BinarySearch(leaf.keys, key)
	if found {
		return nil
	}
	t.length++
	if len(leaf.keys) < order {
		leaf.keys = slices.Insert(leaf.keys, pos, key)
		return nil
	}
	separator, right := splitLeaf(leaf, pos, key, order)
	tracer().Debugf("bplus: leaf split, promoting separator %v", separator)
	t.promote(path, leaf, separator, right, order)
	return nil
}

// splitLeaf inserts key at pos into the full leaf and splits the resulting
// run of order+1 keys: the lower (order+1)/2 keys stay, the rest move to a new
// leaf chained in right after. The new highest key of leaf is returned as
// the separator to copy up.
func splitLeaf[K cmp.Ordered](leaf *leafNode[K], pos int, key K, order int) (K, *leafNode[K]) {
	assertThat(len(leaf.keys) == order, "splitLeaf called for leaf which is not full")
	assertThat(cap(leaf.keys) > order, "splitLeaf: leaf storage has no room for overflow")
	right := newLeaf[K](order)
	leaf.keys = slices.Insert(leaf.keys, pos, key) // uses the spare slot, no allocation
	cut := minLeafKeys(order)
	right.keys = append(right.keys, leaf.keys[cut:]...)
	clear(leaf.keys[cut:])
	leaf.keys = leaf.keys[:cut]
	right.next = leaf.next
	leaf.next = right
	return leaf.keys[cut-1], right
}

// promote carries separator and the new right sibling of left up the recorded
// path. Each full parent splits in turn; if the path is exhausted with a
// promotion still pending, a new root is created and the tree grows by one
// level.
func (t *Tree[K]) promote(path *descent[K], left treeNode[K], separator K, right treeNode[K], order int) {
	for {
		parent, slot, ok := path.pop()
		if !ok {
			root := newInner[K](order)
			root.keys = append(root.keys, separator)
			root.children = append(root.children, left, right)
			t.root = root
			t.height++
			tracer().Debugf("bplus: new root with separator %v, height is now %d", separator, t.height)
			return
		}
		if len(parent.keys) < order-1 {
			parent.keys = slices.Insert(parent.keys, slot, separator)
			parent.children = slices.Insert(parent.children, slot+1, right)
			return
		}
		separator, right = splitInner(parent, slot, separator, right, order)
		left = parent
		tracer().Debugf("bplus: inner split, pushing up separator %v", separator)
	}
}

// splitInner inserts separator at slot and child right of it into the full
// node, then splits the order separators around the middle one. The middle
// separator is removed from both halves and returned for promotion, together
// with the new right half.
func splitInner[K cmp.Ordered](node *innerNode[K], slot int, separator K, child treeNode[K], order int) (K, *innerNode[K]) {
	assertThat(len(node.keys) == order-1, "splitInner called for node which is not full")
	assertThat(cap(node.keys) >= order && cap(node.children) > order,
		"splitInner: node storage has no room for overflow")
	right := newInner[K](order)
	node.keys = slices.Insert(node.keys, slot, separator)
	node.children = slices.Insert(node.children, slot+1, child)
	mid := order / 2
	pushedUp := node.keys[mid]
	right.keys = append(right.keys, node.keys[mid+1:]...)
	right.children = append(right.children, node.children[mid+1:]...)
	clear(node.keys[mid:])
	node.keys = node.keys[:mid]
	clear(node.children[mid+1:])
	node.children = node.children[:mid+1]
	return pushedUp, right
}
