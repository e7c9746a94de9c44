package rbt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/constraints"
)

// Fprint writes an indented branch-art rendering of the tree to w.
// Every node appears on its own line behind an L---- or R---- prefix
// marking the slot it occupies, annotated with its value and color
// tag. An empty tree renders as nothing. Purely presentational; the
// only errors are the writer's own.
func (t *Tree[T]) Fprint(w io.Writer) error {
	return fprintNode(w, t.root, "", true)
}

// Print writes the rendering to standard output.
func (t *Tree[T]) Print() {
	_ = t.Fprint(os.Stdout)
}

// String implements fmt.Stringer with the same rendering.
func (t *Tree[T]) String() string {
	var b strings.Builder
	_ = t.Fprint(&b)
	return b.String()
}

func fprintNode[T constraints.Ordered](w io.Writer, n *Node[T], indent string, right bool) error {
	if n == nil {
		return nil
	}
	branch, childIndent := "L----", indent+"|    "
	if right {
		branch, childIndent = "R----", indent+"     "
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, branch, n.label()); err != nil {
		return err
	}
	if err := fprintNode(w, n.left, childIndent, false); err != nil {
		return err
	}
	return fprintNode(w, n.right, childIndent, true)
}
