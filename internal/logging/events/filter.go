package events

import "github.com/atomicstack/outline-popup-control/internal/logging"

type FilterTracer struct{}

var Filter = FilterTracer{}

func (FilterTracer) Applied(pattern string, matches int) {
	logging.Trace("filter.applied", map[string]interface{}{"pattern": pattern, "matches": matches})
}

func (FilterTracer) Invalid(pattern string) {
	logging.Trace("filter.invalid", map[string]interface{}{"pattern": pattern})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.cleared", nil)
}
