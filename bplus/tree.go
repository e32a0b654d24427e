package bplus

import (
	"cmp"
	"slices"
)

// Tree is an in-memory B+ tree holding a set of unique keys.
//
// The zero value is an empty tree, ready to use. The fanout order is passed
// to every mutating call; see the package documentation.
type Tree[K cmp.Ordered] struct {
	root   *innerNode[K] // index set; nil as long as the sequence set is a single leaf
	head   *leafNode[K]  // first leaf of the sequence set; nil for an empty tree
	order  int           // 0 for an empty tree
	length int
	height int // 0 means empty, 1 means a single leaf
}

// New creates an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.head == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Height returns the number of levels, where 0 means empty and 1 means a
// single leaf without index set.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Order returns the fanout order the tree has been built with, or 0 for an
// empty tree.
func (t *Tree[K]) Order() int {
	if t == nil {
		return 0
	}
	return t.order
}

// Contains reports whether key is a member of the tree.
func (t *Tree[K]) Contains(key K) bool {
	if t.IsEmpty() {
		return false
	}
	leaf := t.descend(key, nil)
	_, found := slices.BinarySearch(leaf.keys, key)
	return found
}

// Min returns the smallest key, if any.
func (t *Tree[K]) Min() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	return t.head.keys[0], true
}

// Max returns the largest key, if any.
func (t *Tree[K]) Max() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	leaf := t.head
	if t.root != nil {
		var n treeNode[K] = t.root
		for !n.isLeaf() {
			inner := n.(*innerNode[K])
			n = inner.children[len(inner.children)-1]
		}
		leaf = n.(*leafNode[K])
	}
	return leaf.keys[len(leaf.keys)-1], true
}

// descend walks from the root of the index set to the leaf whose key range
// covers key. If path is non-nil, every visited inner node and the child
// slot taken there are pushed onto it.
func (t *Tree[K]) descend(key K, path *descent[K]) *leafNode[K] {
	if t.root == nil {
		return t.head
	}
	var n treeNode[K] = t.root
	for {
		switch x := n.(type) {
		case *leafNode[K]:
			return x
		case *innerNode[K]:
			slot := searchSeparators(x.keys, key)
			if path != nil {
				path.push(x, slot)
			}
			n = x.children[slot]
		default:
			panic("unknown tree node type")
		}
	}
}

// reset turns t into an empty tree, releasing its order.
func (t *Tree[K]) reset() {
	t.root = nil
	t.head = nil
	t.order = 0
	t.length = 0
	t.height = 0
}
