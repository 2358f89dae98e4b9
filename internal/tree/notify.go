package tree

import "github.com/atomicstack/outline-popup-control/internal/hierarchy"

// Status mirrors the editor's modal state for a status-line display.
type Status string

const (
	StatusNormal Status = "NORMAL"
	StatusInsert Status = "INSERT"
	StatusDate   Status = "DATE"
)

// Notification carries user-facing feedback out of the controller: filter
// echo and error messages. An empty Text clears the previous notification.
type Notification struct {
	Text  string
	IsErr bool
}

// Observer receives the controller's outward signals. Any callback may be
// nil; the controller never depends on a listener being present.
type Observer struct {
	// Notify receives filter echo and error notifications.
	Notify func(Notification)
	// Select receives the newly selected node, fired once per logical
	// selection change while the selection is valid.
	Select func(hierarchy.Node)
	// Status receives modal status changes.
	Status func(Status)
}

func (o Observer) notify(text string, isErr bool) {
	if o.Notify != nil {
		o.Notify(Notification{Text: text, IsErr: isErr})
	}
}

func (o Observer) selected(node hierarchy.Node) {
	if o.Select != nil {
		o.Select(node)
	}
}

func (o Observer) status(s Status) {
	if o.Status != nil {
		o.Status(s)
	}
}
