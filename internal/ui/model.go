package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/outline-popup-control/internal/hierarchy"
	"github.com/atomicstack/outline-popup-control/internal/theme"
	"github.com/atomicstack/outline-popup-control/internal/tree"
)

// chromeRows is the fixed vertical chrome around the tree: the header line
// plus the bottom bar (status line and filter prompt).
const chromeRows = 3

// defaultViewportHeight is used until the first resize message arrives.
const defaultViewportHeight = 21

const noticeTTL = 5 * time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the outline popup. All tree
// semantics live in the controller; the model translates terminal events
// into controller calls and renders what the controller exposes.
type Model struct {
	controller  *tree.Controller
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	status       tree.Status
	notice       tree.Notification
	noticeExpire time.Time
	selected     hierarchy.Node

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI over the given hierarchy source.
func NewModel(source tree.Source, width, height int, showFooter bool, keymap map[string]string) *Model {
	m := &Model{
		status:     tree.StatusNormal,
		showFooter: showFooter,
	}
	viewport := defaultViewportHeight
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
		viewport = m.viewportHeight()
	}
	m.controller = tree.NewController(source, viewport, tree.Observer{
		Notify: m.onNotify,
		Select: m.onSelect,
		Status: m.onStatus,
	})
	if len(keymap) > 0 {
		m.controller.SetKeymap(keymap)
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages. One message is processed to
// completion before the next; resize shares the queue with keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	m.controller.HandleKey(keyMsg)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.controller.Resize(m.viewportHeight())
	return nil
}

func (m *Model) viewportHeight() int {
	if m.height <= 0 {
		return defaultViewportHeight
	}
	h := m.height - chromeRows
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) onNotify(n tree.Notification) {
	m.notice = n
	if n.Text == "" {
		m.noticeExpire = time.Time{}
		return
	}
	m.noticeExpire = time.Now().Add(noticeTTL)
}

func (m *Model) onSelect(node hierarchy.Node) {
	m.selected = node
}

func (m *Model) onStatus(s tree.Status) {
	m.status = s
}

func (m *Model) currentNotice() tree.Notification {
	if m.notice.Text != "" && !m.noticeExpire.IsZero() && time.Now().After(m.noticeExpire) {
		m.notice = tree.Notification{}
		m.noticeExpire = time.Time{}
	}
	return m.notice
}

// Controller exposes the underlying state machine.
func (m *Model) Controller() *tree.Controller {
	return m.controller
}

// Selected returns the node last announced by the selection observer; a
// companion detail view reads it.
func (m *Model) Selected() hierarchy.Node {
	return m.selected
}

// Status returns the modal status for the status-line display.
func (m *Model) Status() tree.Status {
	return m.status
}
