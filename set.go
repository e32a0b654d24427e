package keyset

import (
	"cmp"
	"io"
	"iter"

	"github.com/npillmayer/keyset/bplus"
)

// Set is an ordered set of unique keys. The zero value is not usable; create
// sets with NewSet.
//
// A Set is not safe for concurrent use.
type Set[K cmp.Ordered] struct {
	tree  bplus.Tree[K]
	order int
}

// NewSet creates an empty set with the order configured in cfg.
func NewSet[K cmp.Ordered](cfg Config) (*Set[K], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Set[K]{order: cfg.Order}, nil
}

// Order returns the fanout order of the set's tree.
func (s *Set[K]) Order() int {
	return s.order
}

// Add inserts key. It returns true if key was not a member before.
func (s *Set[K]) Add(key K) (bool, error) {
	n := s.tree.Len()
	if err := s.tree.Insert(s.order, key); err != nil {
		T().Errorf("keyset add: %v", err)
		return false, err
	}
	return s.tree.Len() > n, nil
}

// Remove deletes key. It returns true if key has been a member.
func (s *Set[K]) Remove(key K) (bool, error) {
	n := s.tree.Len()
	if err := s.tree.Delete(s.order, key); err != nil {
		T().Errorf("keyset remove: %v", err)
		return false, err
	}
	return s.tree.Len() < n, nil
}

// Contains reports whether key is a member of the set.
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// Height returns the number of levels of the set's tree.
func (s *Set[K]) Height() int {
	return s.tree.Height()
}

// All returns an iterator over the keys in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.tree.Scan()
}

// Leaves returns an iterator over the leaves of the set's tree, yielding a
// copy of the keys of every leaf.
func (s *Set[K]) Leaves() iter.Seq[[]K] {
	return s.tree.Leaves()
}

// Min returns the smallest key, if any.
func (s *Set[K]) Min() (K, bool) {
	return s.tree.Min()
}

// Max returns the largest key, if any.
func (s *Set[K]) Max() (K, bool) {
	return s.tree.Max()
}

// Check validates the internal structure of the set.
func (s *Set[K]) Check() error {
	return s.tree.Check()
}

// WriteDot outputs the set's tree in Graphviz DOT format.
func (s *Set[K]) WriteDot(w io.Writer) error {
	return bplus.Tree2Dot(&s.tree, w)
}
