package bplus

import (
	"slices"
	"testing"
)

func TestSearchSeparatorsMatchesLowerBound(t *testing.T) {
	for n := 0; n <= 9; n++ {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = 10 * (i + 1)
		}
		for key := 0; key <= 10*(n+1)+5; key++ {
			want, _ := slices.BinarySearch(keys, key)
			if got := searchSeparators(keys, key); got != want {
				t.Fatalf("keys=%v key=%d: slot %d, lower bound is %d", keys, key, got, want)
			}
		}
	}
}

func TestSearchSeparatorsEqualKeyGoesLeft(t *testing.T) {
	keys := []string{"b", "d", "f"}
	for key, want := range map[string]int{"a": 0, "b": 0, "c": 1, "d": 1, "e": 2, "f": 2, "g": 3} {
		if got := searchSeparators(keys, key); got != want {
			t.Errorf("key %q: slot %d, want %d", key, got, want)
		}
	}
}

func TestBestSibling(t *testing.T) {
	leaf := func(keys ...int) *leafNode[int] {
		l := newLeaf[int](5)
		l.keys = append(l.keys, keys...)
		return l
	}
	parent := newInner[int](5)
	parent.keys = append(parent.keys, 2, 5, 8)
	parent.children = append(parent.children,
		leaf(1, 2), leaf(3, 4, 5), leaf(6, 7, 8), leaf(10, 11, 12))
	cases := []struct{ slot, want int }{
		{0, 1}, // leftmost has a right neighbour only
		{1, 2}, // right neighbour is fuller
		{2, 1}, // tie goes to the left neighbour
		{3, 2}, // rightmost has a left neighbour only
	}
	for _, c := range cases {
		if got := bestSibling(parent, c.slot); got != c.want {
			t.Errorf("slot %d: sibling %d, want %d", c.slot, got, c.want)
		}
	}
}

func TestNodeCapacityLeavesRoomForOverflow(t *testing.T) {
	for order := MinOrder; order < 10; order++ {
		l := newLeaf[int](order)
		n := newInner[int](order)
		if cap(l.keys) != order+1 || cap(n.keys) != order || cap(n.children) != order+1 {
			t.Fatalf("order %d: capacities leaf=%d inner=%d/%d", order,
				cap(l.keys), cap(n.keys), cap(n.children))
		}
	}
}

func TestOccupancyBounds(t *testing.T) {
	cases := []struct{ order, leaf, inner int }{
		{3, 2, 1}, {4, 2, 1}, {5, 3, 2}, {6, 3, 2}, {7, 4, 3},
	}
	for _, c := range cases {
		if minLeafKeys(c.order) != c.leaf || minInnerKeys(c.order) != c.inner {
			t.Errorf("order %d: min leaf %d, min inner %d", c.order, minLeafKeys(c.order), minInnerKeys(c.order))
		}
	}
}
