// Package rbtree implements a red-black tree keyed-set engine
// with insertion, search and ordered traversal operations.
//
// Red-Black Tree is a self-balancing binary search tree that guarantees
// O(log n) worst-case time complexity for basic operations. Keys are
// unique and the structure is append-only: there is no delete operation.
package rbtree

type color bool

const (
	red   color = true
	black color = false
)

// node is one stored key. Absent children are nil. The parent link of
// the root points at the tree's end sentinel, never at nil.
type node[K any] struct {
	key                 K
	color               color
	left, right, parent *node[K]
}

// Tree is a red-black tree holding a set of keys ordered by a strict
// less-than relation. Use New() to create a tree instance.
//
// A Tree is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Tree[K any] struct {
	less func(a, b K) bool
	end  *node[K] // sentinel; end.left is the root slot and end is the past-the-end position
	min  *node[K] // leftmost node, end when empty
	max  *node[K] // rightmost node, end when empty
	size int
}

// New creates and returns a new empty tree ordered by less, which must
// implement a strict weak ordering over K.
func New[K any](less func(a, b K) bool) *Tree[K] {
	end := &node[K]{color: black}
	return &Tree[K]{
		less: less,
		end:  end,
		min:  end,
		max:  end,
	}
}

func (t *Tree[K]) root() *node[K] { return t.end.left }

// Len returns the number of stored keys.
func (t *Tree[K]) Len() int { return t.size }

// Empty reports whether the tree holds no keys.
func (t *Tree[K]) Empty() bool { return t.size == 0 }

// Begin returns an iterator on the smallest key, End() if the tree is empty.
func (t *Tree[K]) Begin() Iterator[K] { return Iterator[K]{t.min} }

// End returns the past-the-end iterator position.
func (t *Tree[K]) End() Iterator[K] { return Iterator[K]{t.end} }

// Min returns the smallest stored key, false if the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	if t.min == t.end {
		var zero K
		return zero, false
	}
	return t.min.key, true
}

// Max returns the largest stored key, false if the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	if t.max == t.end {
		var zero K
		return zero, false
	}
	return t.max.key, true
}

// Insert adds key to the tree while maintaining the red-black
// properties. It returns the position of the key and whether a new
// node was created; inserting a key already present mutates nothing
// and returns the existing position with false.
func (t *Tree[K]) Insert(key K) (Iterator[K], bool) {
	if t.root() == nil {
		return Iterator[K]{t.insertRoot(key)}, true
	}
	n, parent := t.findWithParent(key)
	if n != nil {
		return Iterator[K]{n}, false
	}
	return Iterator[K]{t.insertChild(parent, key)}, true
}

// Find returns the position of key, End() if it is not stored.
func (t *Tree[K]) Find(key K) Iterator[K] {
	n := t.root()
	for n != nil {
		switch {
		case t.less(key, n.key):
			n = n.left
		case t.less(n.key, key):
			n = n.right
		default:
			return Iterator[K]{n}
		}
	}
	return t.End()
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.Find(key) != t.End()
}

// LowerBound returns the position of the smallest stored key that is
// not less than key, End() if there is none.
func (t *Tree[K]) LowerBound(key K) Iterator[K] {
	result := t.end
	for n := t.root(); n != nil; {
		if t.less(n.key, key) {
			n = n.right
		} else {
			result = n
			n = n.left
		}
	}
	return Iterator[K]{result}
}

// UpperBound returns the position of the smallest stored key that is
// strictly greater than key, End() if there is none.
func (t *Tree[K]) UpperBound(key K) Iterator[K] {
	result := t.end
	for n := t.root(); n != nil; {
		if t.less(key, n.key) {
			result = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return Iterator[K]{result}
}

// findWithParent descends exactly like Find but also reports the last
// node visited before the search fell off the tree, so insertion does
// not need a second descent. parent is nil only when the tree is empty.
func (t *Tree[K]) findWithParent(key K) (n, parent *node[K]) {
	n = t.root()
	for n != nil {
		switch {
		case t.less(key, n.key):
			parent = n
			n = n.left
		case t.less(n.key, key):
			parent = n
			n = n.right
		default:
			return n, parent
		}
	}
	return nil, parent
}

// insertRoot places the first node of an empty tree. The root is born
// black, so no fix-up is needed.
func (t *Tree[K]) insertRoot(key K) *node[K] {
	n := &node[K]{key: key, color: black, parent: t.end}
	t.end.left = n
	t.min = n
	t.max = n
	t.size++
	return n
}

// insertChild attaches a new red leaf under parent and rebalances.
// The node is fully built before any existing link is touched.
func (t *Tree[K]) insertChild(parent *node[K], key K) *node[K] {
	z := &node[K]{key: key, color: red, parent: parent}
	if t.less(key, parent.key) {
		parent.left = z
		if parent == t.min {
			t.min = z
		}
	} else {
		parent.right = z
		if parent == t.max {
			t.max = z
		}
	}
	t.size++
	t.insertFixup(z)
	return z
}

// insertFixup restores the red-black properties after attaching the
// red leaf z. It loops while z's parent is red; the sentinel is black
// and the root is black on entry, so the loop terminates at the root
// without a special case. A red parent is never the root, hence the
// grandparent is always a real node inside the loop.
func (t *Tree[K]) insertFixup(z *node[K]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right // uncle; nil counts as black
			if y != nil && y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y != nil && y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root().color = black
}

func (t *Tree[K]) leftRotate(x *node[K]) {
	/*
		Left rotation around node x:
			    Before:               After:
		          P                    P
		          |                    |
		          x                    y
		         / \                  / \
		        A   y       →        x   C
		           / \              / \
		          B   C            A   B

		P may be the end sentinel: the root lives in its left slot,
		so the x == x.parent.left branch covers rotation at the root.
	*/
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K]) rightRotate(y *node[K]) {
	/*
		Right rotation around node y:
		    Before:               After:
		       P                    P
		       |                    |
		       y                    x
		      / \                  / \
		     x   C       →        A   y
		    / \                      / \
		   A   B                    B   C
	*/
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y == y.parent.left {
		y.parent.left = x
	} else {
		y.parent.right = x
	}
	x.right = y
	y.parent = x
}

// Clone returns an independent tree with the same key set, the same
// shape and the same node colors. The walk is iterative (left, then
// right, then climb), advancing a source and a destination cursor in
// lockstep, so arbitrarily deep trees cannot exhaust the call stack.
func (t *Tree[K]) Clone() *Tree[K] {
	dst := New[K](t.less)
	src := t.root()
	if src == nil {
		return dst
	}

	n := &node[K]{key: src.key, color: src.color, parent: dst.end}
	dst.end.left = n
	dst.size = t.size
	if src == t.min {
		dst.min = n
	}
	if src == t.max {
		dst.max = n
	}

	for src != t.end {
		switch {
		case src.left != nil && n.left == nil:
			src = src.left
			n.left = &node[K]{key: src.key, color: src.color, parent: n}
			n = n.left
			if src == t.min {
				dst.min = n
			}
		case src.right != nil && n.right == nil:
			src = src.right
			n.right = &node[K]{key: src.key, color: src.color, parent: n}
			n = n.right
			if src == t.max {
				dst.max = n
			}
		default:
			src = src.parent
			n = n.parent
		}
	}
	return dst
}

// CopyFrom replaces the contents of t with a deep copy of src.
func (t *Tree[K]) CopyFrom(src *Tree[K]) {
	if t == src {
		return
	}
	t.MoveFrom(src.Clone())
}

// MoveFrom replaces the contents of t with those of src in O(1). src
// is left empty with a fresh sentinel and stays usable.
func (t *Tree[K]) MoveFrom(src *Tree[K]) {
	if t == src {
		return
	}
	t.less = src.less
	t.end = src.end
	t.min = src.min
	t.max = src.max
	t.size = src.size

	end := &node[K]{color: black}
	src.end = end
	src.min = end
	src.max = end
	src.size = 0
}

// Swap exchanges the contents of t and other in O(1).
func (t *Tree[K]) Swap(other *Tree[K]) {
	t.less, other.less = other.less, t.less
	t.end, other.end = other.end, t.end
	t.min, other.min = other.min, t.min
	t.max, other.max = other.max, t.max
	t.size, other.size = other.size, t.size
}

// Verify validates the red-black tree invariants:
//  1. Root is always black and its parent is the sentinel
//  2. Red nodes must have black children
//  3. All paths from a node to its leaves cross the same black count
//  4. In-order traversal is strictly ascending and matches Len()
//  5. The leftmost/rightmost caches hold the true minimum and maximum
//
// Returns true if all properties are satisfied.
func (t *Tree[K]) Verify() bool {
	root := t.root()
	if root == nil {
		return t.min == t.end && t.max == t.end && t.size == 0
	}
	if root.color != black || root.parent != t.end {
		return false
	}
	if _, ok := checkSubtree(root); !ok {
		return false
	}
	if t.min != minNode(root) || t.max != maxNode(root) {
		return false
	}

	count := 0
	var prev *node[K]
	for it := t.Begin(); it != t.End(); it = it.Next() {
		if prev != nil && !t.less(prev.key, it.n.key) {
			return false
		}
		prev = it.n
		count++
	}
	return count == t.size
}

func checkSubtree[K any](n *node[K]) (int, bool) {
	if n == nil {
		return 1, true
	}

	if n.color == red {
		if (n.left != nil && n.left.color == red) || (n.right != nil && n.right.color == red) {
			return 0, false
		}
	}
	if (n.left != nil && n.left.parent != n) || (n.right != nil && n.right.parent != n) {
		return 0, false
	}

	leftCount, leftOk := checkSubtree(n.left)
	rightCount, rightOk := checkSubtree(n.right)

	if !leftOk || !rightOk || leftCount != rightCount {
		return 0, false
	}

	if n.color == black {
		leftCount++
	}
	return leftCount, true
}

func minNode[K any](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K any](n *node[K]) *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}
