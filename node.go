package rbt

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Color is the per-node balance tag of a red-black tree.
type Color uint8

const (
	Red   Color = 0
	Black Color = 1
)

var (
	// ErrInvalidColor is returned when a color outside {Red, Black}
	// is assigned to a node.
	ErrInvalidColor = errors.New("rbt: invalid color")

	// ErrNilNode is returned when a nil node is passed where a node
	// is required.
	ErrNilNode = errors.New("rbt: nil node")
)

// String renders the color tag used by the tree printer.
func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// Node is a single tree vertex: a value, a color, and links to its
// parent and two children. A parent exclusively owns its children;
// the parent link is a non-owning back-reference, nil on a root or a
// detached node.
type Node[T constraints.Ordered] struct {
	value  T
	color  Color
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

// NewNode returns a red node holding value, detached from any tree.
func NewNode[T constraints.Ordered](value T) *Node[T] {
	return &Node[T]{value: value, color: Red}
}

// Value returns the value stored in n.
func (n *Node[T]) Value() T { return n.value }

// Color returns the current color of n.
func (n *Node[T]) Color() Color { return n.color }

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Parent returns the parent, or nil when n is a root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// SetColor assigns c as the color of n. Only Red and Black are
// accepted; any other Color value is rejected with ErrInvalidColor.
func (n *Node[T]) SetColor(c Color) error {
	if c != Red && c != Black {
		return ErrInvalidColor
	}
	n.color = c
	return nil
}

// SetLeft makes child the left child of n and rewires child's parent
// back-reference. A nil child empties the slot. The displaced child,
// if any, keeps its stale parent link; the caller relinks or discards
// it.
func (n *Node[T]) SetLeft(child *Node[T]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

// SetRight makes child the right child of n. Same contract as SetLeft.
func (n *Node[T]) SetRight(child *Node[T]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

/*************** Relationship queries ***************/

// Grandparent returns the parent of n's parent, or nil when n sits at
// depth < 2.
func (n *Node[T]) Grandparent() *Node[T] {
	if n.parent == nil {
		return nil
	}
	return n.parent.parent
}

// Uncle returns the sibling of n's parent, or nil when the relation
// does not exist.
func (n *Node[T]) Uncle() *Node[T] {
	p := n.parent
	if p == nil {
		return nil
	}
	g := p.parent
	if g == nil {
		return nil
	}
	if p.IsLeftChild() {
		return g.right
	}
	return g.left
}

// Sibling returns the other child of n's parent, or nil.
func (n *Node[T]) Sibling() *Node[T] {
	p := n.parent
	if p == nil {
		return nil
	}
	if n.IsLeftChild() {
		return p.right
	}
	return p.left
}

// IsLeftChild reports whether n sits on its parent's left side. The
// side is decided by value order against the parent, which is sound
// only because the no-duplicate insertion policy guarantees siblings
// never hold equal values. Panics when n has no parent.
func (n *Node[T]) IsLeftChild() bool {
	if n.parent == nil {
		panic("rbt: side query on a node with no parent")
	}
	return n.parent.value > n.value
}

// IsRightChild reports whether n sits on its parent's right side.
// Panics when n has no parent.
func (n *Node[T]) IsRightChild() bool {
	if n.parent == nil {
		panic("rbt: side query on a node with no parent")
	}
	return n.parent.value < n.value
}

// Swap exchanges the values and colors of a and b in place. The links
// of both nodes stay untouched, so tree topology is preserved.
func Swap[T constraints.Ordered](a, b *Node[T]) error {
	if a == nil || b == nil {
		return ErrNilNode
	}
	a.value, b.value = b.value, a.value
	a.color, b.color = b.color, a.color
	return nil
}

// String implements fmt.Stringer.
func (n *Node[T]) String() string {
	if n.color == Red {
		return fmt.Sprintf("RedNode(%v)", n.value)
	}
	return fmt.Sprintf("BlackNode(%v)", n.value)
}

// label renders the compact value|color form used by Tree.Fprint.
func (n *Node[T]) label() string {
	return fmt.Sprintf("%v|%s", n.value, n.color)
}
