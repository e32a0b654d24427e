package bplus

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of the tree:
//
//   - all leaves are at the same depth, which equals Height();
//   - non-root leaves hold between (m+1)/2 and m keys, non-root internal
//     nodes between (m-1)/2 and m-1 separators, a root at least one;
//   - every internal node has one child more than separators, and its
//     children are either all leaves or all internal nodes;
//   - separators are ascending and bound the keys of their subtrees;
//   - the sequence set links the leaves in tree order, and its keys are
//     strictly ascending and Len() in number.
//
// Check is meant for tests and debugging. It returns an error wrapping
// ErrCorrupted for the first violation found.
func (t *Tree[K]) Check() error {
	if t == nil {
		return ErrNilTree
	}
	if t.head == nil {
		if t.root != nil || t.length != 0 || t.height != 0 || t.order != 0 {
			return corrupted("empty tree has root=%v, len=%d, height=%d, order=%d",
				t.root != nil, t.length, t.height, t.order)
		}
		return nil
	}
	if err := ValidateOrder(t.order); err != nil {
		return corrupted("tree carries %v", err)
	}
	c := checker[K]{order: t.order}
	depth := 1
	if t.root == nil {
		if err := c.checkLeaf(t.head, true, bound[K]{}, bound[K]{}); err != nil {
			return err
		}
	} else {
		var err error
		if depth, err = c.checkInner(t.root, true, bound[K]{}, bound[K]{}); err != nil {
			return err
		}
	}
	if depth != t.height {
		return corrupted("height is %d, but leaves are at depth %d", t.height, depth)
	}
	return c.checkSequenceSet(t)
}

func corrupted(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorrupted}, args...)...)
}

// bound is an optional key bound of a subtree.
type bound[K cmp.Ordered] struct {
	key K
	set bool
}

type checker[K cmp.Ordered] struct {
	order  int
	leaves []*leafNode[K] // leaves in tree order
}

// checkLeaf checks a leaf holding keys in (low, high].
func (c *checker[K]) checkLeaf(leaf *leafNode[K], isRoot bool, low, high bound[K]) error {
	if leaf == nil {
		return corrupted("nil leaf")
	}
	n := len(leaf.keys)
	switch {
	case n > c.order:
		return corrupted("leaf holds %d keys, order is %d", n, c.order)
	case isRoot && n == 0:
		return corrupted("sole leaf is empty")
	case !isRoot && n < minLeafKeys(c.order):
		return corrupted("leaf holds %d keys, minimum is %d", n, minLeafKeys(c.order))
	case cap(leaf.keys) <= c.order:
		return corrupted("leaf storage capacity %d leaves no room for overflow", cap(leaf.keys))
	}
	for i, key := range leaf.keys {
		if i > 0 && cmp.Compare(leaf.keys[i-1], key) >= 0 {
			return corrupted("leaf keys not strictly ascending at %d: %v", i, leaf.keys)
		}
		if low.set && cmp.Compare(key, low.key) <= 0 {
			return corrupted("leaf key %v not above separator %v", key, low.key)
		}
		if high.set && cmp.Compare(key, high.key) > 0 {
			return corrupted("leaf key %v above separator %v", key, high.key)
		}
	}
	c.leaves = append(c.leaves, leaf)
	return nil
}

// checkInner checks the subtree at node with keys in (low, high] and returns
// its depth.
func (c *checker[K]) checkInner(node *innerNode[K], isRoot bool, low, high bound[K]) (int, error) {
	if node == nil {
		return 0, corrupted("nil internal node")
	}
	n := len(node.keys)
	switch {
	case n > c.order-1:
		return 0, corrupted("internal node holds %d separators, order is %d", n, c.order)
	case isRoot && n == 0:
		return 0, corrupted("root has no separators")
	case !isRoot && n < minInnerKeys(c.order):
		return 0, corrupted("internal node holds %d separators, minimum is %d", n, minInnerKeys(c.order))
	case len(node.children) != n+1:
		return 0, corrupted("internal node has %d separators but %d children", n, len(node.children))
	}
	for i, key := range node.keys {
		if i > 0 && cmp.Compare(node.keys[i-1], key) >= 0 {
			return 0, corrupted("separators not strictly ascending at %d: %v", i, node.keys)
		}
		if low.set && cmp.Compare(key, low.key) <= 0 {
			return 0, corrupted("separator %v not above bound %v", key, low.key)
		}
		if high.set && cmp.Compare(key, high.key) > 0 {
			return 0, corrupted("separator %v above bound %v", key, high.key)
		}
	}
	leafChildren := node.children[0] != nil && node.children[0].isLeaf()
	depth := 0
	for i, child := range node.children {
		if child == nil {
			return 0, corrupted("nil child at slot %d", i)
		}
		if child.isLeaf() != leafChildren {
			return 0, corrupted("internal node mixes leaf and internal children")
		}
		lo, hi := low, high
		if i > 0 {
			lo = bound[K]{key: node.keys[i-1], set: true}
		}
		if i < n {
			hi = bound[K]{key: node.keys[i], set: true}
		}
		d := 1
		if leafChildren {
			if err := c.checkLeaf(child.(*leafNode[K]), false, lo, hi); err != nil {
				return 0, err
			}
		} else {
			var err error
			if d, err = c.checkInner(child.(*innerNode[K]), false, lo, hi); err != nil {
				return 0, err
			}
		}
		if i == 0 {
			depth = d
		} else if d != depth {
			return 0, corrupted("leaves at unequal depth below separator %v", node.keys[i-1])
		}
	}
	return depth + 1, nil
}

// checkSequenceSet compares the leaf chain against the leaves found in tree
// order and counts the keys.
func (c *checker[K]) checkSequenceSet(t *Tree[K]) error {
	if t.head != c.leaves[0] {
		return corrupted("sequence set does not start at the leftmost leaf")
	}
	count := 0
	var prev *leafNode[K]
	leaf := t.head
	for i, want := range c.leaves {
		if leaf != want {
			return corrupted("sequence set link %d does not point to the next leaf in tree order", i)
		}
		if prev != nil && cmp.Compare(prev.keys[len(prev.keys)-1], leaf.keys[0]) >= 0 {
			return corrupted("sequence set not ascending between leaf %d and %d", i-1, i)
		}
		count += len(leaf.keys)
		prev, leaf = leaf, leaf.next
	}
	if leaf != nil {
		return corrupted("sequence set continues past the rightmost leaf")
	}
	if count != t.length {
		return corrupted("sequence set holds %d keys, tree length is %d", count, t.length)
	}
	return nil
}
