package hierarchy

import (
	"fmt"
	"sort"
	"strconv"
)

// FieldNames lists the fields every item carries, in display order.
var FieldNames = []string{"about", "due", "urgency"}

// Store owns an in-memory hierarchy of items. It exists so the engine has a
// collaborator to drive; swapping in a persistent implementation only means
// satisfying the Node capability set.
type Store struct {
	root *Item
	seq  int
}

// NewStore returns an empty hierarchy.
func NewStore() *Store {
	s := &Store{}
	s.root = &Item{store: s, name: "root"}
	return s
}

// Roots returns the top-level items.
func (s *Store) Roots() []Node {
	return s.root.Children()
}

// AddRoot appends a new top-level item and returns it.
func (s *Store) AddRoot() (Node, error) {
	return s.root.appendChild()
}

func (s *Store) nextName() string {
	s.seq++
	return "item-" + strconv.Itoa(s.seq)
}

// Item is the store's node implementation.
type Item struct {
	store    *Store
	name     string
	parent   *Item
	children []*Item

	about   string
	due     string
	urgency int
}

// Name implements Node.
func (it *Item) Name() string { return it.name }

// Fields implements Node.
func (it *Item) Fields() []string {
	return append([]string(nil), FieldNames...)
}

// Field implements Node.
func (it *Item) Field(name string) (string, error) {
	switch name {
	case "about":
		return it.about, nil
	case "due":
		return it.due, nil
	case "urgency":
		return strconv.Itoa(it.urgency), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Edit implements Node. Urgency accepts integers only; the other fields are
// free-form text.
func (it *Item) Edit(name, value string) error {
	switch name {
	case "about":
		it.about = value
	case "due":
		it.due = value
	case "urgency":
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("urgency must be a number: %w", err)
		}
		it.urgency = parsed
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Children implements Node.
func (it *Item) Children() []Node {
	nodes := make([]Node, len(it.children))
	for i, child := range it.children {
		nodes[i] = child
	}
	return nodes
}

// Parent implements Node. Top-level items report no parent; the store root
// is never exposed.
func (it *Item) Parent() Node {
	if it.parent == nil || it.parent == it.store.root {
		return nil
	}
	return it.parent
}

// AddSibling inserts a new item immediately after this one in its sibling
// group.
func (it *Item) AddSibling() (Node, error) {
	if it.parent == nil {
		return nil, ErrDetached
	}
	idx := it.parent.indexOf(it)
	if idx < 0 {
		return nil, ErrDetached
	}
	child := &Item{store: it.store, name: it.store.nextName(), parent: it.parent}
	siblings := it.parent.children
	siblings = append(siblings, nil)
	copy(siblings[idx+2:], siblings[idx+1:])
	siblings[idx+1] = child
	it.parent.children = siblings
	return child, nil
}

// AddChild appends a new item under this one.
func (it *Item) AddChild() (Node, error) {
	return it.appendChild()
}

func (it *Item) appendChild() (Node, error) {
	if it.store == nil {
		return nil, ErrDetached
	}
	child := &Item{store: it.store, name: it.store.nextName(), parent: it}
	it.children = append(it.children, child)
	return child, nil
}

// Drop removes this item (and its subtree) from the hierarchy.
func (it *Item) Drop() error {
	if it.parent == nil {
		return ErrDetached
	}
	idx := it.parent.indexOf(it)
	if idx < 0 {
		return ErrDetached
	}
	it.parent.children = append(it.parent.children[:idx], it.parent.children[idx+1:]...)
	it.parent = nil
	return nil
}

// NextSibling returns the item after this one in its sibling group, or nil.
func (it *Item) NextSibling() Node {
	if it.parent == nil {
		return nil
	}
	idx := it.parent.indexOf(it)
	if idx < 0 || idx+1 >= len(it.parent.children) {
		return nil
	}
	return it.parent.children[idx+1]
}

// PrevSibling returns the item before this one in its sibling group, or nil.
func (it *Item) PrevSibling() Node {
	if it.parent == nil {
		return nil
	}
	idx := it.parent.indexOf(it)
	if idx <= 0 {
		return nil
	}
	return it.parent.children[idx-1]
}

// ShiftUp swaps this item with its previous sibling.
func (it *Item) ShiftUp() error {
	return it.shift(-1)
}

// ShiftDown swaps this item with its next sibling.
func (it *Item) ShiftDown() error {
	return it.shift(1)
}

func (it *Item) shift(delta int) error {
	if it.parent == nil {
		return ErrDetached
	}
	idx := it.parent.indexOf(it)
	if idx < 0 {
		return ErrDetached
	}
	target := idx + delta
	if target < 0 || target >= len(it.parent.children) {
		return ErrAtEdge
	}
	siblings := it.parent.children
	siblings[idx], siblings[target] = siblings[target], siblings[idx]
	return nil
}

// Sort reorders this item's sibling group by the given attribute. Urgency
// sorts highest first; the text fields sort lexicographically.
func (it *Item) Sort(attr string) error {
	if it.parent == nil {
		return ErrDetached
	}
	siblings := it.parent.children
	switch attr {
	case "about":
		sort.SliceStable(siblings, func(i, j int) bool { return siblings[i].about < siblings[j].about })
	case "due":
		sort.SliceStable(siblings, func(i, j int) bool { return siblings[i].due < siblings[j].due })
	case "urgency":
		sort.SliceStable(siblings, func(i, j int) bool { return siblings[i].urgency > siblings[j].urgency })
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, attr)
	}
	return nil
}

func (it *Item) indexOf(child *Item) int {
	for i, c := range it.children {
		if c == child {
			return i
		}
	}
	return -1
}
