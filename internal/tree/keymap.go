package tree

// Action names bindable in navigate mode. Keymap files refer to these.
const (
	ActionMoveUp             = "move-up"
	ActionMoveDown           = "move-down"
	ActionMoveTop            = "move-top"
	ActionMoveBottom         = "move-bottom"
	ActionShiftUp            = "shift-up"
	ActionShiftDown          = "shift-down"
	ActionEditAbout          = "edit-about"
	ActionEditDue            = "edit-due"
	ActionToggleExpand       = "toggle-expand"
	ActionToggleExpandParent = "toggle-expand-parent"
	ActionAddSibling         = "add-sibling"
	ActionAddChild           = "add-child"
	ActionRemove             = "remove"
	ActionSortMenu           = "sort-menu"
	ActionStartFilter        = "start-filter"
	ActionStopFilter         = "stop-filter"
)

// KnownActions lists every bindable action name.
func KnownActions() []string {
	return []string{
		ActionMoveUp,
		ActionMoveDown,
		ActionMoveTop,
		ActionMoveBottom,
		ActionShiftUp,
		ActionShiftDown,
		ActionEditAbout,
		ActionEditDue,
		ActionToggleExpand,
		ActionToggleExpandParent,
		ActionAddSibling,
		ActionAddChild,
		ActionRemove,
		ActionSortMenu,
		ActionStartFilter,
		ActionStopFilter,
	}
}

// DefaultKeymap returns the built-in navigate-mode bindings, key to action.
func DefaultKeymap() map[string]string {
	return map[string]string{
		"esc":        ActionStopFilter,
		"k":          ActionMoveUp,
		"up":         ActionMoveUp,
		"K":          ActionShiftUp,
		"shift+up":   ActionShiftUp,
		"j":          ActionMoveDown,
		"down":       ActionMoveDown,
		"J":          ActionShiftDown,
		"shift+down": ActionShiftDown,
		"i":          ActionEditAbout,
		"d":          ActionEditDue,
		"z":          ActionToggleExpand,
		"Z":          ActionToggleExpandParent,
		"a":          ActionAddSibling,
		"A":          ActionAddChild,
		"x":          ActionRemove,
		"g":          ActionMoveTop,
		"home":       ActionMoveTop,
		"G":          ActionMoveBottom,
		"end":        ActionMoveBottom,
		"s":          ActionSortMenu,
		"/":          ActionStartFilter,
	}
}
