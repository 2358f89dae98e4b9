package tree

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/outline-popup-control/internal/hierarchy"
	"github.com/atomicstack/outline-popup-control/internal/logging/events"
)

// Mode is the controller's interaction state. It gates key dispatch.
type Mode int

const (
	ModeNavigate Mode = iota
	ModeEdit
	ModeFilter
	ModeSort
)

const noEditing = "none"

// Source supplies the top-level nodes being navigated and the entry point
// for creating an item while nothing is selected yet.
type Source interface {
	Roots() []hierarchy.Node
	AddRoot() (hierarchy.Node, error)
}

// Controller is the modal state machine behind the tree view. It owns the
// selection, the flattened row list, the scroll window, and the filter and
// sort sub-states. One key or resize event is processed to completion
// before the next; every hierarchy mutation funnels through here and a
// failed one leaves selection, rows, and window exactly as they were.
type Controller struct {
	source   Source
	observer Observer
	keymap   map[string]string

	rows    []*Row
	index   map[string]*Row
	current int
	editing string
	filter  textinput.Model
	sort    *SortMenu
	window  *Window

	// lastSelected is the name of the node last announced through
	// Observer.Select; it is how a selection change is detected by
	// identity rather than by index.
	lastSelected string
}

// NewController builds a controller over the given source with a viewport
// of the given height (rows available to the tree, excluding chrome).
func NewController(source Source, height int, observer Observer) *Controller {
	filter := textinput.New()
	filter.Prompt = "/"
	c := &Controller{
		source:   source,
		observer: observer,
		keymap:   DefaultKeymap(),
		index:    map[string]*Row{},
		current:  -1,
		editing:  noEditing,
		filter:   filter,
		window:   NewWindow(height),
	}
	c.refreshRows()
	return c
}

// SetKeymap overlays navigate-mode bindings on top of the defaults.
// Unknown action names are kept verbatim and simply never dispatch.
func (c *Controller) SetKeymap(overrides map[string]string) {
	for key, action := range overrides {
		c.keymap[key] = action
	}
}

// Rows returns the current flattened row sequence.
func (c *Controller) Rows() []*Row { return c.rows }

// Current returns the selection index, -1 meaning no selection.
func (c *Controller) Current() int { return c.current }

// CurrentRow returns the selected row, or nil when nothing is selected.
func (c *Controller) CurrentRow() *Row {
	if c.current < 0 || c.current >= len(c.rows) {
		return nil
	}
	return c.rows[c.current]
}

// CurrentNode returns the selected node, or nil.
func (c *Controller) CurrentNode() hierarchy.Node {
	if row := c.CurrentRow(); row != nil {
		return row.Node
	}
	return nil
}

// Window exposes the scroll window for the renderer.
func (c *Controller) Window() *Window { return c.window }

// Editing returns the field being edited, or "" outside of edit mode.
func (c *Controller) Editing() string {
	if c.editing == noEditing {
		return ""
	}
	return c.editing
}

// FilterValue returns the active filter pattern, empty when unfiltered.
func (c *Controller) FilterValue() string { return c.filter.Value() }

// FilterView renders the filter buffer, including its cursor while focused.
func (c *Controller) FilterView() string { return c.filter.View() }

// SortMenu returns the active sort selector, or nil outside of sort mode.
func (c *Controller) SortMenu() *SortMenu {
	if c.sort != nil && c.sort.Visible {
		return c.sort
	}
	return nil
}

// Mode reports the current interaction state.
func (c *Controller) Mode() Mode {
	switch {
	case c.editing != noEditing:
		return ModeEdit
	case c.sort != nil && c.sort.Visible:
		return ModeSort
	case c.filter.Focused():
		return ModeFilter
	default:
		return ModeNavigate
	}
}

// Resize informs the controller of a new viewport height.
func (c *Controller) Resize(height int) {
	c.window.Resize(height, c.current)
}

// HandleKey processes one key event to completion. Dispatch order: edit
// mode first, then the sort menu, then filter focus, then the navigate
// keymap. Unrecognized keys are a no-op, never an error.
func (c *Controller) HandleKey(msg tea.KeyMsg) {
	key := msg.String()
	switch {
	case c.editing != noEditing:
		c.handleEditKey(msg, key)
	case c.sort != nil && c.sort.Visible:
		c.handleSortKey(key)
	case c.filter.Focused():
		c.handleFilterKey(msg, key)
	default:
		c.handleNavigateKey(key)
	}
}

func (c *Controller) handleNavigateKey(key string) {
	action, ok := c.keymap[key]
	if !ok {
		return
	}
	switch action {
	case ActionMoveUp:
		c.moveUp()
	case ActionMoveDown:
		c.moveDown()
	case ActionMoveTop:
		c.setCurrent(0)
	case ActionMoveBottom:
		c.setCurrent(len(c.rows) - 1)
	case ActionShiftUp:
		c.shiftCurrent(-1)
	case ActionShiftDown:
		c.shiftCurrent(1)
	case ActionEditAbout:
		c.startEdit(PrimaryField)
	case ActionEditDue:
		c.startEdit("due")
	case ActionToggleExpand:
		c.toggleExpand()
	case ActionToggleExpandParent:
		c.toggleExpandParent()
	case ActionAddSibling:
		c.addSibling()
	case ActionAddChild:
		c.addChild()
	case ActionRemove:
		c.removeItem()
	case ActionSortMenu:
		c.showSortMenu()
	case ActionStartFilter:
		c.startFiltering()
	case ActionStopFilter:
		// Only meaningful while a filter is applied; otherwise a no-op.
		if c.filter.Value() != "" {
			c.stopFiltering()
		}
	}
}

// ---- edit mode ----

func (c *Controller) handleEditKey(msg tea.KeyMsg, key string) {
	if key == "esc" {
		c.stopEdit()
		return
	}
	if row := c.CurrentRow(); row != nil {
		row.UpdateField(c.editing, msg)
	}
}

func (c *Controller) startEdit(field string) {
	row := c.CurrentRow()
	if row == nil {
		return
	}
	if field == PrimaryField {
		c.observer.status(StatusInsert)
	} else {
		c.observer.status(StatusDate)
	}
	row.FocusField(field)
	c.editing = field
	events.Tree.EditStart(row.Node.Name(), field)
}

// stopEdit commits the buffered value into the node and returns to
// navigate mode. A rejected commit reseeds the buffer from the node so the
// two never disagree.
func (c *Controller) stopEdit() {
	row := c.CurrentRow()
	field := c.editing
	c.editing = noEditing
	c.observer.status(StatusNormal)
	if row == nil {
		return
	}
	row.BlurField(field)
	if err := row.Node.Edit(field, row.FieldValue(field)); err != nil {
		events.Mutation.Error(err)
		c.observer.notify(err.Error(), true)
		row.RefreshField(field)
		return
	}
	events.Tree.EditCommit(row.Node.Name(), field)
}

// ---- sort menu ----

func (c *Controller) showSortMenu() {
	row := c.CurrentRow()
	if row == nil {
		return
	}
	c.sort = NewSortMenu(row.Node.Fields())
	c.sort.Visible = true
}

func (c *Controller) handleSortKey(key string) {
	attr, done := c.sort.HandleKey(key)
	if !done || attr == "" {
		return
	}
	row := c.CurrentRow()
	if row == nil {
		return
	}
	name := row.Node.Name()
	if err := row.Node.Sort(attr); err != nil {
		events.Mutation.Error(err)
		c.observer.notify(err.Error(), true)
		return
	}
	if !c.reflatten() {
		return
	}
	events.Mutation.Sort(name, attr)
	// The sorted node may sit at a different index now; follow it by
	// identity, not position.
	if moved, ok := c.index[name]; ok {
		c.setCurrent(moved.Index)
	}
}

// ---- filter mode ----

func (c *Controller) startFiltering() {
	c.filter.Focus()
	c.observer.notify(c.filter.Value(), false)
}

func (c *Controller) handleFilterKey(msg tea.KeyMsg, key string) {
	if key == "esc" {
		c.stopFiltering()
		return
	}
	if key == "enter" {
		// Keep the pattern applied but hand keys back to navigation.
		c.filter.Blur()
		return
	}
	c.filter, _ = c.filter.Update(msg)
	c.observer.notify(c.filter.Value(), false)
	c.applyFilter()
	c.setCurrent(0)
}

// applyFilter reflattens under the current pattern. A pattern that does
// not compile degrades to an empty match list; the carry-over table is kept
// so row state resurfaces once the pattern becomes valid again.
func (c *Controller) applyFilter() {
	rows, index, err := Flatten(c.source.Roots(), c.filter.Value(), c.index)
	if err != nil {
		var ferr *FilterError
		if errors.As(err, &ferr) {
			events.Filter.Invalid(ferr.Pattern)
			c.observer.notify(ferr.Error(), true)
			c.rows = nil
			return
		}
		c.observer.notify(err.Error(), true)
		return
	}
	c.rows = rows
	c.index = index
	if pattern := c.filter.Value(); pattern != "" {
		events.Filter.Applied(pattern, len(rows))
	} else {
		events.Tree.Flatten(len(rows), "")
	}
}

func (c *Controller) stopFiltering() {
	c.filter.SetValue("")
	c.filter.Blur()
	c.refreshRows()
	c.setCurrent(-1)
	c.observer.notify("", false)
	c.observer.status(StatusNormal)
	events.Filter.Cleared()
}

// ---- navigation ----

func (c *Controller) moveUp() {
	if c.current > 0 {
		c.setCurrent(c.current - 1)
	}
}

func (c *Controller) moveDown() {
	c.setCurrent(c.current + 1)
}

func (c *Controller) toggleExpand() {
	row := c.CurrentRow()
	if row == nil {
		return
	}
	row.ToggleExpand()
	events.Tree.Expand(row.Node.Name(), row.Expanded)
	c.reflatten()
	c.setCurrent(c.current)
}

// toggleExpandParent selects the parent row first, then toggles it, so a
// collapse from deep inside a subtree lands on the subtree root.
func (c *Controller) toggleExpandParent() {
	row := c.CurrentRow()
	if row == nil {
		return
	}
	if parent := row.Node.Parent(); parent != nil {
		if prow, ok := c.index[parent.Name()]; ok {
			c.setCurrent(prow.Index)
		}
	}
	c.toggleExpand()
}

func (c *Controller) addSibling() {
	row := c.CurrentRow()
	if row == nil {
		c.addRoot()
		return
	}
	node, err := row.Node.AddSibling()
	if err != nil {
		events.Mutation.Error(err)
		c.observer.notify(err.Error(), true)
		return
	}
	if !c.reflatten() {
		return
	}
	events.Mutation.Add(node.Name(), "sibling")
	c.moveToNode(node, PrimaryField)
}

func (c *Controller) addChild() {
	row := c.CurrentRow()
	if row == nil {
		c.addRoot()
		return
	}
	row.Expand()
	node, err := row.Node.AddChild()
	if err != nil {
		events.Mutation.Error(err)
		c.observer.notify(err.Error(), true)
		return
	}
	if !c.reflatten() {
		return
	}
	events.Mutation.Add(node.Name(), "child")
	c.moveToNode(node, PrimaryField)
}

func (c *Controller) addRoot() {
	node, err := c.source.AddRoot()
	if err != nil {
		events.Mutation.Error(err)
		c.observer.notify(err.Error(), true)
		return
	}
	if !c.reflatten() {
		return
	}
	events.Mutation.Add(node.Name(), "root")
	c.moveToNode(node, PrimaryField)
}

func (c *Controller) removeItem() {
	row := c.CurrentRow()
	if row == nil {
		return
	}
	name := row.Node.Name()
	if err := row.Node.Drop(); err != nil {
		events.Mutation.Error(err)
		c.observer.notify(err.Error(), true)
		return
	}
	if !c.reflatten() {
		return
	}
	events.Mutation.Drop(name)
	// Keep the numeric position, re-clamped to the shorter list.
	c.setCurrent(c.current)
}

func (c *Controller) shiftCurrent(delta int) {
	row := c.CurrentRow()
	if row == nil {
		return
	}
	var err error
	if delta < 0 {
		err = row.Node.ShiftUp()
	} else {
		err = row.Node.ShiftDown()
	}
	if err != nil {
		events.Mutation.Error(err)
		c.observer.notify(err.Error(), true)
		return
	}
	if !c.reflatten() {
		return
	}
	if delta < 0 {
		events.Mutation.Shift(row.Node.Name(), "up")
	} else {
		events.Mutation.Shift(row.Node.Name(), "down")
	}
	c.moveToNode(row.Node, "")
}

// moveToNode selects the row bound to node and optionally starts editing
// one of its fields.
func (c *Controller) moveToNode(node hierarchy.Node, edit string) {
	if node == nil {
		return
	}
	row, ok := c.index[node.Name()]
	if !ok {
		return
	}
	c.setCurrent(row.Index)
	if edit != "" {
		c.startEdit(edit)
	}
}

// setCurrent clamps the selection into [-1, len(rows)-1], keeps the scroll
// window fixed on it, and fires the outward selection signal exactly once
// per logical change. The change is judged by node identity, so a rebuild
// that leaves the index pointing at a different row still announces it,
// while a keystroke that cannot move past an edge stays silent.
func (c *Controller) setCurrent(value int) {
	if value < -1 {
		value = -1
	}
	if max := len(c.rows) - 1; value > max {
		value = max
	}
	c.current = value
	c.window.FixView(c.current)
	name := ""
	row := c.CurrentRow()
	if row != nil {
		name = row.Node.Name()
	}
	if name == c.lastSelected {
		return
	}
	c.lastSelected = name
	events.Tree.Cursor(c.current)
	if row != nil {
		c.observer.selected(row.Node)
	}
}

// refreshRows reflattens with the current pattern, surfacing any filter
// problem as a notification rather than a failure.
func (c *Controller) refreshRows() {
	c.applyFilter()
}

// reflatten is refreshRows for mutation paths: it reports whether the rows
// were actually rebuilt so callers can stop before moving the selection.
func (c *Controller) reflatten() bool {
	rows, index, err := Flatten(c.source.Roots(), c.filter.Value(), c.index)
	if err != nil {
		c.observer.notify(err.Error(), true)
		return false
	}
	c.rows = rows
	c.index = index
	events.Tree.Flatten(len(rows), c.filter.Value())
	return true
}
