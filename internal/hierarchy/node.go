package hierarchy

import "errors"

// Node is one entry in the recursive hierarchy the tree engine navigates.
// The engine only ever talks to the hierarchy through this capability set;
// item lifecycle and persistence stay with the implementation behind it.
type Node interface {
	// Name returns the stable unique identity of the node. Row state is
	// keyed on it across flatten passes, so it must never change for the
	// lifetime of the node.
	Name() string
	Fields() []string
	Field(name string) (string, error)
	Edit(name, value string) error
	Children() []Node
	// Parent returns the enclosing node, or nil for top-level nodes. The
	// reference is lookup-only; ownership always runs parent to child.
	Parent() Node

	AddSibling() (Node, error)
	AddChild() (Node, error)
	Drop() error
	NextSibling() Node
	PrevSibling() Node
	ShiftUp() error
	ShiftDown() error
	Sort(attr string) error
}

var (
	// ErrUnknownField reports a field name outside the node's field set.
	ErrUnknownField = errors.New("unknown field")
	// ErrDetached reports a mutation on a node already removed from the
	// hierarchy.
	ErrDetached = errors.New("item is no longer part of the hierarchy")
	// ErrAtEdge reports a shift on the first or last node of a sibling
	// group.
	ErrAtEdge = errors.New("item is already at the edge of its sibling group")
)
