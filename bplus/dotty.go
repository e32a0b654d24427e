package bplus

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

type nodeids[K cmp.Ordered] struct {
	idTable map[treeNode[K]]int
	max     int
}

func newtable[K cmp.Ordered]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[treeNode[K]]int),
		max:     1,
	}
}

func (ids *nodeids[K]) alloc(node treeNode[K]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Index set edges are solid, sequence set links
// are dashed.
func Tree2Dot[K cmp.Ordered](tree *Tree[K], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if !tree.IsEmpty() {
		ids := newtable[K]()
		var nodelist, edgelist strings.Builder
		var walk func(n treeNode[K])
		walk = func(n treeNode[K]) {
			id := ids.alloc(n)
			switch x := n.(type) {
			case *leafNode[K]:
				fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\",shape=box,style=filled,fillcolor=\"#a3d7e4\"];\n",
					id, joinKeys(x.keys))
			case *innerNode[K]:
				fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\",shape=record];\n", id, joinKeys(x.keys))
				for _, child := range x.children {
					walk(child)
					fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", id, ids.alloc(child))
				}
			}
		}
		if tree.root != nil {
			walk(tree.root)
		} else {
			walk(tree.head)
		}
		b.WriteString(nodelist.String())
		b.WriteString(edgelist.String())
		b.WriteString("\t{ rank=same; ")
		for leaf := tree.head; leaf != nil; leaf = leaf.next {
			fmt.Fprintf(&b, "\"%d\"; ", ids.alloc(leaf))
		}
		b.WriteString("}\n")
		for leaf := tree.head; leaf != nil && leaf.next != nil; leaf = leaf.next {
			fmt.Fprintf(&b, "\t\"%d\" -> \"%d\" [style=dashed,constraint=false];\n",
				ids.alloc(leaf), ids.alloc(leaf.next))
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func joinKeys[K cmp.Ordered](keys []K) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strings.ReplaceAll(fmt.Sprint(key), `"`, `\"`)
	}
	return strings.Join(parts, " | ")
}
