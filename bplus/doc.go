/*
Package bplus implements an in-memory B+ tree over ordered, unique keys.

The tree is a set, not a map: it stores keys only. Keys live in leaves, which
are chained in ascending order (the sequence set). Internal nodes hold
separator keys only and are used for descent (the index set).

# Order

Every mutating call receives the fanout order m. A leaf holds up to m keys,
an internal node up to m-1 separators and one more child than separators.
Non-root nodes stay at least half full:

	minLeaf     = (m+1)/2
	minInternal = (m-1)/2

The order must be at least MinOrder and must be the same for every call on a
non-empty tree. Once a tree becomes empty again, it forgets its order.

# Mutation

Nodes do not link to their parents. Insert and Delete record the descent on
a pair of path stacks and replay it bottom-up. A leaf split copies its new
highest key up as a separator, an internal split pushes its middle separator
up. On delete an underfull node first tries to borrow one entry from its
fuller neighbour (ties go to the left neighbour) and otherwise merges with it,
which may cascade up to the root and shrink the tree.

The tree is not safe for concurrent use, and must not be mutated while a Scan
is running.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bplus

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'keyset'
func tracer() tracing.Trace {
	return tracing.Select("keyset")
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
