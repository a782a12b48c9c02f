package rbtree

import (
	"iter"
)

// Iterator is a bidirectional in-order cursor over a tree. It is a
// small value, compared with ==; two iterators are equal when they
// address the same position. The zero Iterator is invalid.
//
// Stepping uses only parent/child links, no auxiliary stack: a full
// traversal costs O(1) amortized per step, O(log n) worst case for a
// single step. Advancing past End() or stepping back from Begin() is
// undefined, with one exception: Prev() of End() yields the largest
// key's position.
type Iterator[K any] struct {
	n *node[K]
}

// Key returns the key at the cursor. Dereferencing End() is undefined.
func (it Iterator[K]) Key() K { return it.n.key }

// Next returns the position of the in-order successor.
func (it Iterator[K]) Next() Iterator[K] {
	n := it.n
	if n.right != nil {
		return Iterator[K]{minNode(n.right)}
	}
	// Climb while coming up from a right subtree. The root is the
	// sentinel's left child, so climbing off the maximum lands on End().
	for n == n.parent.right {
		n = n.parent
	}
	return Iterator[K]{n.parent}
}

// Prev returns the position of the in-order predecessor. The sentinel
// holds the root in its left slot, so Prev() of End() falls into the
// left-subtree branch and lands on the maximum.
func (it Iterator[K]) Prev() Iterator[K] {
	n := it.n
	if n.left != nil {
		return Iterator[K]{maxNode(n.left)}
	}
	for n == n.parent.left {
		n = n.parent
	}
	return Iterator[K]{n.parent}
}

// All returns an ascending in-order traversal of the keys, usable with
// range. The tree must not be mutated during the walk.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it, end := t.Begin(), t.End(); it != end; it = it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Backward returns a descending traversal of the keys, usable with
// range. The tree must not be mutated during the walk.
func (t *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it, begin := t.End(), t.Begin(); it != begin; {
			it = it.Prev()
			if !yield(it.Key()) {
				return
			}
		}
	}
}
