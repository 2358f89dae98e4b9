package events

import "github.com/atomicstack/outline-popup-control/internal/logging"

type TreeTracer struct{}

var Tree = TreeTracer{}

func (TreeTracer) Cursor(index int) {
	logging.Trace("tree.cursor", map[string]interface{}{"index": index})
}

func (TreeTracer) Flatten(rows int, pattern string) {
	logging.Trace("tree.flatten", map[string]interface{}{"rows": rows, "pattern": pattern})
}

func (TreeTracer) Expand(name string, expanded bool) {
	logging.Trace("tree.expand", map[string]interface{}{"name": name, "expanded": expanded})
}

func (TreeTracer) EditStart(name, field string) {
	logging.Trace("tree.edit-start", map[string]interface{}{"name": name, "field": field})
}

func (TreeTracer) EditCommit(name, field string) {
	logging.Trace("tree.edit-commit", map[string]interface{}{"name": name, "field": field})
}
