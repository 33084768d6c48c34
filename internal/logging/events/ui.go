package events

import "github.com/jiangshengdev/lis-explorer/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Key(key string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key})
}

func (UITracer) Seek(element, step int) {
	logging.Trace("ui.seek", map[string]interface{}{"element": element, "step": step})
}

func (UITracer) EditApplied(input string, length int) {
	logging.Trace("ui.edit-applied", map[string]interface{}{"input": input, "length": length})
}

func (UITracer) EditRejected(input, reason string) {
	logging.Trace("ui.edit-rejected", map[string]interface{}{"input": input, "reason": reason})
}

func (UITracer) Region(name string, hovered bool) {
	logging.Trace("ui.region", map[string]interface{}{"name": name, "hovered": hovered})
}
