package bplus

import "cmp"

// treeNode is either a *leafNode or an *innerNode. The children of an inner
// node are all of the same kind.
type treeNode[K cmp.Ordered] interface {
	isLeaf() bool
	keyCount() int
}

// leafNode is a member of the sequence set.
type leafNode[K cmp.Ordered] struct {
	// keys is ascending and has room for order+1 keys, i.e. one key of
	// transient overflow before a split.
	keys []K
	// next links to the leaf holding the next higher keys, nil for the last leaf.
	next *leafNode[K]
}

func (l *leafNode[K]) isLeaf() bool  { return true }
func (l *leafNode[K]) keyCount() int { return len(l.keys) }

// innerNode is a member of the index set.
//
// Separator keys[i] bounds children[i] (all keys <= keys[i]) from
// children[i+1] (all keys > keys[i]). len(children) == len(keys)+1.
type innerNode[K cmp.Ordered] struct {
	// keys has room for order separators, children for order+1 children,
	// again leaving space for one entry of transient overflow.
	keys     []K
	children []treeNode[K]
}

func (n *innerNode[K]) isLeaf() bool  { return false }
func (n *innerNode[K]) keyCount() int { return len(n.keys) }

func newLeaf[K cmp.Ordered](order int) *leafNode[K] {
	return &leafNode[K]{
		keys: make([]K, 0, order+1),
	}
}

func newInner[K cmp.Ordered](order int) *innerNode[K] {
	return &innerNode[K]{
		keys:     make([]K, 0, order),
		children: make([]treeNode[K], 0, order+1),
	}
}

// searchSeparators returns the lowest index i with key <= keys[i], or
// len(keys) if key is greater than every separator. This is the child slot
// to descend into.
//
// An exact hit returns early; as separators are strictly ascending, this is
// the same index a search for the lower bound would find.
func searchSeparators[K cmp.Ordered](keys []K, key K) int {
	i, j := 0, len(keys)-1
	for i <= j {
		mid := int(uint(i+j) >> 1)
		switch c := cmp.Compare(key, keys[mid]); {
		case c == 0:
			return mid
		case c < 0:
			j = mid - 1
		default:
			i = mid + 1
		}
	}
	return i
}

// bestSibling selects the neighbour of children[slot] used for rebalancing:
// the only neighbour at either end, otherwise the one holding more keys,
// with ties going to the left.
func bestSibling[K cmp.Ordered](parent *innerNode[K], slot int) int {
	assertThat(len(parent.children) >= 2, "bestSibling called for parent with a single child")
	switch {
	case slot == 0:
		return 1
	case slot == len(parent.children)-1:
		return slot - 1
	case parent.children[slot-1].keyCount() < parent.children[slot+1].keyCount():
		return slot + 1
	default:
		return slot - 1
	}
}
