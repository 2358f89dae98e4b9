package tree

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/outline-popup-control/internal/hierarchy"
)

// Row pairs one hierarchy node with its per-row display state. The field
// buffers are the only staging area for in-progress edits; the node itself
// is written on commit. Rows are carried across flatten passes keyed on the
// node's name, which is how expand state and half-typed edits survive
// rebuilds.
type Row struct {
	Node     hierarchy.Node
	Expanded bool
	Depth    int
	Index    int

	fields map[string]textinput.Model
}

// NewRow seeds a binding for a node first appearing in the flattened list.
func NewRow(node hierarchy.Node, depth, index int) *Row {
	r := &Row{
		Node:   node,
		Depth:  depth,
		Index:  index,
		fields: make(map[string]textinput.Model, len(node.Fields())),
	}
	for _, field := range node.Fields() {
		r.fields[field] = newFieldInput(node, field)
	}
	return r
}

func newFieldInput(node hierarchy.Node, field string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	if value, err := node.Field(field); err == nil {
		in.SetValue(value)
	}
	in.CursorEnd()
	return in
}

// FieldValue returns the buffered value for a field.
func (r *Row) FieldValue(field string) string {
	in, ok := r.fields[field]
	if !ok {
		return ""
	}
	return in.Value()
}

// RefreshField reseeds a field buffer from the node's current value,
// discarding any buffered edit.
func (r *Row) RefreshField(field string) {
	r.fields[field] = newFieldInput(r.Node, field)
}

// FocusField moves keyboard focus into the field's buffer.
func (r *Row) FocusField(field string) {
	if in, ok := r.fields[field]; ok {
		in.Focus()
		r.fields[field] = in
	}
}

// BlurField removes keyboard focus from the field's buffer.
func (r *Row) BlurField(field string) {
	if in, ok := r.fields[field]; ok {
		in.Blur()
		r.fields[field] = in
	}
}

// FieldFocused reports whether the field's buffer currently has focus.
func (r *Row) FieldFocused(field string) bool {
	in, ok := r.fields[field]
	return ok && in.Focused()
}

// UpdateField forwards one keystroke to the field's buffer. The buffer owns
// cursor motion and insert/delete semantics; the node is untouched until
// commit.
func (r *Row) UpdateField(field string, msg tea.Msg) {
	in, ok := r.fields[field]
	if !ok {
		return
	}
	in, _ = in.Update(msg)
	r.fields[field] = in
}

// ToggleExpand flips the expanded flag.
func (r *Row) ToggleExpand() { r.Expanded = !r.Expanded }

// Expand sets the expanded flag.
func (r *Row) Expand() { r.Expanded = true }

// ChildCount returns the number of direct children under the node.
func (r *Row) ChildCount() int {
	return len(r.Node.Children())
}
