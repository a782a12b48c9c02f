// Package ordset provides a generic ordered set backed by a red-black
// tree, with O(log n) worst-case insertion and lookup and in-order
// iteration. Keys are unique and the set is append-only: there is no
// remove operation.
//
// A Set is not safe for concurrent use. Callers sharing one across
// goroutines must provide external synchronization.
package ordset

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/ylab-dev/ordset/internal/rbtree"
)

// Set is an ordered set of keys. Use New or NewFunc to create one.
type Set[K any] struct {
	tree *rbtree.Tree[K]
}

// Iterator is a bidirectional cursor over a Set. Iterators compare
// with ==; a lookup miss compares equal to End(). Advancing past End()
// or stepping back from Begin() is undefined, except that Prev() of
// End() yields the largest key's position.
type Iterator[K any] struct {
	it rbtree.Iterator[K]
}

// Key returns the key at the cursor. Dereferencing End() is undefined.
func (it Iterator[K]) Key() K { return it.it.Key() }

// Next returns the position of the next key in ascending order.
func (it Iterator[K]) Next() Iterator[K] { return Iterator[K]{it.it.Next()} }

// Prev returns the position of the previous key in ascending order.
func (it Iterator[K]) Prev() Iterator[K] { return Iterator[K]{it.it.Prev()} }

// New creates an empty set ordered by the natural < of K.
func New[K constraints.Ordered]() *Set[K] {
	return NewFunc[K](func(a, b K) bool { return a < b })
}

// NewFunc creates an empty set ordered by less, which must implement a
// strict weak ordering over K. No other operation on K is required.
func NewFunc[K any](less func(a, b K) bool) *Set[K] {
	return &Set[K]{tree: rbtree.New(less)}
}

// Len returns the number of stored keys.
func (s *Set[K]) Len() int { return s.tree.Len() }

// Empty reports whether the set holds no keys.
func (s *Set[K]) Empty() bool { return s.tree.Empty() }

// Insert adds key to the set. It returns the key's position and
// whether it was newly inserted; inserting a present key changes
// nothing and returns its existing position with false.
func (s *Set[K]) Insert(key K) (Iterator[K], bool) {
	it, inserted := s.tree.Insert(key)
	return Iterator[K]{it}, inserted
}

// InsertAll adds each key in turn, silently skipping duplicates.
func (s *Set[K]) InsertAll(keys ...K) {
	for _, key := range keys {
		s.tree.Insert(key)
	}
}

// InsertSeq adds every key produced by seq, silently skipping
// duplicates.
func (s *Set[K]) InsertSeq(seq iter.Seq[K]) {
	for key := range seq {
		s.tree.Insert(key)
	}
}

// Find returns the position of key, End() if it is not stored.
func (s *Set[K]) Find(key K) Iterator[K] { return Iterator[K]{s.tree.Find(key)} }

// Contains reports whether key is stored in the set.
func (s *Set[K]) Contains(key K) bool { return s.tree.Contains(key) }

// LowerBound returns the position of the smallest key not less than
// key, End() if there is none.
func (s *Set[K]) LowerBound(key K) Iterator[K] { return Iterator[K]{s.tree.LowerBound(key)} }

// UpperBound returns the position of the smallest key strictly greater
// than key, End() if there is none.
func (s *Set[K]) UpperBound(key K) Iterator[K] { return Iterator[K]{s.tree.UpperBound(key)} }

// Begin returns the position of the smallest key, End() when empty.
func (s *Set[K]) Begin() Iterator[K] { return Iterator[K]{s.tree.Begin()} }

// End returns the past-the-end position.
func (s *Set[K]) End() Iterator[K] { return Iterator[K]{s.tree.End()} }

// Min returns the smallest stored key, false if the set is empty.
func (s *Set[K]) Min() (K, bool) { return s.tree.Min() }

// Max returns the largest stored key, false if the set is empty.
func (s *Set[K]) Max() (K, bool) { return s.tree.Max() }

// All returns the keys in ascending order, usable with range. The set
// must not be mutated during the walk.
func (s *Set[K]) All() iter.Seq[K] { return s.tree.All() }

// Backward returns the keys in descending order, usable with range.
// The set must not be mutated during the walk.
func (s *Set[K]) Backward() iter.Seq[K] { return s.tree.Backward() }

// Clone returns an independent set with the same keys and the same
// internal tree shape. Mutating the clone never affects s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{tree: s.tree.Clone()}
}

// CopyFrom replaces the contents of s with a deep copy of src.
func (s *Set[K]) CopyFrom(src *Set[K]) { s.tree.CopyFrom(src.tree) }

// MoveFrom replaces the contents of s with those of src in O(1),
// leaving src empty and usable.
func (s *Set[K]) MoveFrom(src *Set[K]) { s.tree.MoveFrom(src.tree) }

// Swap exchanges the contents of s and other in O(1).
func (s *Set[K]) Swap(other *Set[K]) { s.tree.Swap(other.tree) }
