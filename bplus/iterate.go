package bplus

import (
	"iter"
	"slices"
)

// Scan returns an iterator over all keys in ascending order.
//
// Scan walks the sequence set only and never touches the index set. Each
// range over the returned sequence starts again at the first leaf. The tree
// must not be mutated during iteration.
func (t *Tree[K]) Scan() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t == nil {
			return
		}
		for leaf := t.head; leaf != nil; leaf = leaf.next {
			for _, key := range leaf.keys {
				if !yield(key) {
					return
				}
			}
		}
	}
}

// Leaves returns an iterator over the sequence set, yielding a copy of the
// keys of each leaf in chain order.
func (t *Tree[K]) Leaves() iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		if t == nil {
			return
		}
		for leaf := t.head; leaf != nil; leaf = leaf.next {
			if !yield(slices.Clone(leaf.keys)) {
				return
			}
		}
	}
}

// Keys collects all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	out := make([]K, 0, t.Len())
	for key := range t.Scan() {
		out = append(out, key)
	}
	return out
}
