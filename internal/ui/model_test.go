package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/outline-popup-control/internal/hierarchy"
	"github.com/atomicstack/outline-popup-control/internal/tree"
)

func seedStore(t *testing.T) *hierarchy.Store {
	t.Helper()
	store := hierarchy.NewStore()
	add := func(parent hierarchy.Node, about string) hierarchy.Node {
		var node hierarchy.Node
		var err error
		if parent == nil {
			node, err = store.AddRoot()
		} else {
			node, err = parent.AddChild()
		}
		if err != nil {
			t.Fatalf("add %q: %v", about, err)
		}
		if err := node.Edit(tree.PrimaryField, about); err != nil {
			t.Fatalf("edit %q: %v", about, err)
		}
		return node
	}
	groceries := add(nil, "groceries")
	add(groceries, "milk")
	add(groceries, "bread")
	work := add(nil, "work")
	add(work, "report")
	return store
}

func newHarness(t *testing.T) *Harness {
	t.Helper()
	return NewHarness(NewModel(seedStore(t), 60, 14, false, nil))
}

func TestKeysReachController(t *testing.T) {
	h := newHarness(t)
	h.SendKeys("j", "j")
	c := h.Model().Controller()
	if c.Current() != 1 {
		t.Fatalf("expected selection 1, got %d", c.Current())
	}
}

func TestSelectedObserverTracksCursor(t *testing.T) {
	h := newHarness(t)
	if h.Model().Selected() != nil {
		t.Fatalf("expected no selection yet")
	}
	h.SendKeys("j")
	node := h.Model().Selected()
	if node == nil || node.Name() != "item-1" {
		t.Fatalf("expected item-1 selected, got %v", node)
	}
}

func TestStatusObserverTracksMode(t *testing.T) {
	h := newHarness(t)
	if h.Model().Status() != tree.StatusNormal {
		t.Fatalf("expected NORMAL, got %v", h.Model().Status())
	}
	h.SendKeys("j", "i")
	if h.Model().Status() != tree.StatusInsert {
		t.Fatalf("expected INSERT while editing, got %v", h.Model().Status())
	}
	h.SendKeys("esc")
	if h.Model().Status() != tree.StatusNormal {
		t.Fatalf("expected NORMAL after commit, got %v", h.Model().Status())
	}
}

func TestWindowSizeMessageResizesViewport(t *testing.T) {
	store := seedStore(t)
	h := NewHarness(NewModel(store, 0, 0, false, nil))
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 10})
	c := h.Model().Controller()
	if got := c.Window().Height(); got != 10-chromeRows {
		t.Fatalf("expected viewport height %d, got %d", 10-chromeRows, got)
	}
}

func TestFixedDimensionsIgnoreResize(t *testing.T) {
	store := seedStore(t)
	h := NewHarness(NewModel(store, 60, 14, false, nil))
	h.Send(tea.WindowSizeMsg{Width: 10, Height: 5})
	c := h.Model().Controller()
	if got := c.Window().Height(); got != 14-chromeRows {
		t.Fatalf("expected fixed viewport height %d, got %d", 14-chromeRows, got)
	}
}

func TestTinyHeightKeepsOneRow(t *testing.T) {
	store := seedStore(t)
	h := NewHarness(NewModel(store, 0, 0, false, nil))
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 2})
	if got := h.Model().Controller().Window().Height(); got != 1 {
		t.Fatalf("expected minimum viewport height 1, got %d", got)
	}
}

func TestCtrlCQuits(t *testing.T) {
	model := NewModel(seedStore(t), 60, 14, false, nil)
	cmd := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestKeymapOverridePassedThrough(t *testing.T) {
	model := NewModel(seedStore(t), 60, 14, false, map[string]string{"n": tree.ActionMoveDown})
	h := NewHarness(model)
	h.SendKeys("n")
	if h.Model().Controller().Current() != 0 {
		t.Fatalf("expected override binding to select first row")
	}
}

func TestUnknownMessageIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.Send(struct{}{})
	if h.Model().Controller().Current() != -1 {
		t.Fatalf("expected state untouched by unknown message")
	}
}
