package events

import "github.com/atomicstack/outline-popup-control/internal/logging"

type MutationTracer struct{}

var Mutation = MutationTracer{}

func (MutationTracer) Add(name, kind string) {
	logging.Trace("mutation.add", map[string]interface{}{"name": name, "kind": kind})
}

func (MutationTracer) Drop(name string) {
	logging.Trace("mutation.drop", map[string]interface{}{"name": name})
}

func (MutationTracer) Shift(name, direction string) {
	logging.Trace("mutation.shift", map[string]interface{}{"name": name, "direction": direction})
}

func (MutationTracer) Sort(name, attr string) {
	logging.Trace("mutation.sort", map[string]interface{}{"name": name, "attr": attr})
}

func (MutationTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("mutation.error", map[string]interface{}{"error": err.Error()})
}
