package bplus

import (
	"cmp"
	"fmt"
	"strings"
	"testing"
)

// render prints the tree structure, e.g. "[20: (10 20) (30 40 50)]".
// Inner nodes are shown as [separators: children], leaves as (keys).
func render[K cmp.Ordered](t *Tree[K]) string {
	if t.IsEmpty() {
		return "<empty>"
	}
	if t.root == nil {
		return renderNode[K](t.head)
	}
	return renderNode[K](t.root)
}

func renderNode[K cmp.Ordered](n treeNode[K]) string {
	switch x := n.(type) {
	case *leafNode[K]:
		return "(" + joinSpace(x.keys) + ")"
	case *innerNode[K]:
		children := make([]string, len(x.children))
		for i, child := range x.children {
			children[i] = renderNode[K](child)
		}
		return "[" + joinSpace(x.keys) + ": " + strings.Join(children, " ") + "]"
	}
	return "?"
}

func joinSpace[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprint(key)
	}
	return strings.Join(parts, " ")
}

func buildTree(t *testing.T, order int, keys ...int) *Tree[int] {
	t.Helper()
	tree := New[int]()
	for _, key := range keys {
		if err := tree.Insert(order, key); err != nil {
			t.Fatalf("insert %d failed: %v", key, err)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed after build: %v", err)
	}
	return tree
}

func deleteKeys(t *testing.T, tree *Tree[int], order int, keys ...int) {
	t.Helper()
	for _, key := range keys {
		if err := tree.Delete(order, key); err != nil {
			t.Fatalf("delete %d failed: %v", key, err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("invariant check failed after deleting %d: %v\n%s", key, err, render(tree))
		}
	}
}

func sameKeys(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
