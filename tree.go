package rbt

import "golang.org/x/exp/constraints"

// Tree is a red-black tree over any ordered value type.
// - Single-writer API (callers coordinate concurrency).
// - No duplicates: equal values are reported back, never re-inserted.
// - O(log n) Insert/Search, O(1) IsEmpty/Size.
// - Insert-and-query-only; deletion is intentionally absent.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
	size int
}

// New builds a tree by inserting the given values in order. Duplicate
// values are dropped exactly the way Insert drops them.
func New[T constraints.Ordered](values ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Size returns the number of values currently present.
func (t *Tree[T]) Size() int { return t.size }

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool { return t.root == nil }

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Insert adds value to the tree, rebalancing as needed. It returns
// the node holding value and whether a new node was attached:
// inserting a value that is already present is a non-fatal no-op
// reported as (existing, false), with size, shape, and colors all
// untouched.
func (t *Tree[T]) Insert(value T) (*Node[T], bool) {
	if t.root == nil {
		t.root = NewNode(value)
		t.root.color = Black
		t.size = 1
		return t.root, true
	}

	n, attached := t.attach(NewNode(value))
	if !attached {
		return n, false
	}
	t.size++

	// Restore the invariants bottom-up from the new leaf, re-pin the
	// root, and force it black.
	t.root = t.recolor(n)
	t.root.color = Black
	return n, true
}

// attach descends from the root and links n as a red leaf on the
// correct side, or reports the node already holding an equal value.
func (t *Tree[T]) attach(n *Node[T]) (*Node[T], bool) {
	cur := t.root
	for {
		switch {
		case n.value == cur.value:
			return cur, false
		case n.value < cur.value:
			if cur.left == nil {
				cur.SetLeft(n)
				return n, true
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.SetRight(n)
				return n, true
			}
			cur = cur.right
		}
	}
}

/******************** Rotations ********************/

// rotateLeft promotes the right child of x into x's position and
// returns it as the new subtree root. The new root inherits x's old
// parent link, but the parent's child slot is not rewritten here: the
// caller owns the reattachment. Colors are untouched.
func (t *Tree[T]) rotateLeft(x *Node[T]) *Node[T] {
	m := x.right
	m.parent = x.parent
	x.SetRight(m.left)
	m.SetLeft(x)
	return m
}

// rotateRight promotes the left child of x into x's position. Mirror
// of rotateLeft, same contract.
func (t *Tree[T]) rotateRight(x *Node[T]) *Node[T] {
	m := x.left
	m.parent = x.parent
	x.SetLeft(m.right)
	m.SetRight(x)
	return m
}

/******************** Recoloring ********************/

// recolor restores the red-black invariants walking upward from n
// after an attachment. Each iteration handles one grandparent level,
// so stack usage stays O(1) regardless of tree height. It returns the
// node the caller must re-pin as root.
//
// Three cases per level:
//   - Case I:   parent is black — nothing to restore.
//   - Case II:  parent and uncle are red — recolor and push the
//     violation two levels up.
//   - Case III: parent is red, uncle black or absent — resolve by
//     rotation and continue from the rotated subtree's new root.
func (t *Tree[T]) recolor(n *Node[T]) *Node[T] {
	for {
		parent := n.parent
		if parent == nil {
			return n
		}
		grandparent := parent.parent
		if grandparent == nil {
			// Two levels only; no invariant can be violated yet.
			return parent
		}

		if parent.color == Black {
			// Case I
			return t.root
		}

		uncle := n.Uncle()
		if uncle != nil && uncle.color == Red {
			// Case II
			parent.color = Black
			uncle.color = Black
			grandparent.color = Red
			n = grandparent
			continue
		}

		// Case III. The rotation hands back a new local subtree root,
		// which must be hooked onto the great-grandparent on the side
		// its value dictates before the walk continues above it.
		great := grandparent.parent
		sub := t.resolveRotation(n)
		if great != nil {
			if great.value > sub.value {
				great.SetLeft(sub)
			} else {
				great.SetRight(sub)
			}
		}
		n = sub
	}
}

// resolveRotation handles the four red-parent/black-uncle shapes of
// Case III and returns the new root of the rotated subtree.
func (t *Tree[T]) resolveRotation(n *Node[T]) *Node[T] {
	parent := n.parent
	grandparent := parent.parent

	switch {
	case parent.IsLeftChild() && n.IsLeftChild():
		// left-left: single right rotation of the grandparent.
		grandparent.color = Red
		parent.color = Black
		return t.rotateRight(grandparent)
	case parent.IsLeftChild():
		// left-right: fold the bend left, then rotate right.
		parent = t.rotateLeft(parent)
		grandparent.SetLeft(parent)
		grandparent.color = Red
		grandparent = t.rotateRight(grandparent)
		grandparent.color = Black
		return grandparent
	case n.IsLeftChild():
		// right-left: mirror of left-right.
		parent = t.rotateRight(parent)
		grandparent.SetRight(parent)
		grandparent.color = Red
		grandparent = t.rotateLeft(grandparent)
		grandparent.color = Black
		return grandparent
	default:
		// right-right: single left rotation of the grandparent.
		grandparent.color = Red
		parent.color = Black
		return t.rotateLeft(grandparent)
	}
}

/******************** Queries ********************/

// Search returns the node holding value, or nil.
func (t *Tree[T]) Search(value T) *Node[T] {
	n := t.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Contains reports whether value is present.
func (t *Tree[T]) Contains(value T) bool { return t.Search(value) != nil }

// Min returns the smallest value in the tree; ok is false when the
// tree is empty.
func (t *Tree[T]) Min() (value T, ok bool) {
	if t.root == nil {
		return value, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value in the tree; ok is false when the
// tree is empty.
func (t *Tree[T]) Max() (value T, ok bool) {
	if t.root == nil {
		return value, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// InOrder applies fn to every value in ascending order. If fn returns
// false, the walk stops early.
func (t *Tree[T]) InOrder(fn func(T) bool) {
	inOrder(t.root, fn)
}

func inOrder[T constraints.Ordered](n *Node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.left, fn) {
		return false
	}
	if !fn(n.value) {
		return false
	}
	return inOrder(n.right, fn)
}

// Height returns the number of edges on the longest root-to-leaf
// path, or -1 for an empty tree.
func (t *Tree[T]) Height() int { return height(t.root) }

func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}
