package events

import "github.com/jiangshengdev/lis-explorer/internal/logging"

type EngineTracer struct{}

type NavigatorTracer struct{}

type PlaybackTracer struct{}

type HoverTracer struct{}

var (
	Engine    = EngineTracer{}
	Navigator = NavigatorTracer{}
	Playback  = PlaybackTracer{}
	Hover     = HoverTracer{}
)

func (EngineTracer) Computed(inputLen, steps, resultLen int) {
	logging.Trace("engine.computed", map[string]interface{}{
		"input":  inputLen,
		"steps":  steps,
		"result": resultLen,
	})
}

func (NavigatorTracer) Moved(op string, step, total int) {
	logging.Trace("navigator.moved", map[string]interface{}{
		"op":    op,
		"step":  step,
		"total": total,
	})
}

func (NavigatorTracer) Blocked(op string, step int) {
	logging.Trace("navigator.blocked", map[string]interface{}{"op": op, "step": step})
}

func (PlaybackTracer) Started(intervalMS int64) {
	logging.Trace("playback.start", map[string]interface{}{"interval_ms": intervalMS})
}

func (PlaybackTracer) Stopped() {
	logging.Trace("playback.stop", nil)
}

func (PlaybackTracer) SpeedChanged(intervalMS int64, restarted bool) {
	logging.Trace("playback.speed", map[string]interface{}{
		"interval_ms": intervalMS,
		"restarted":   restarted,
	})
}

func (PlaybackTracer) Exhausted(step int) {
	logging.Trace("playback.exhausted", map[string]interface{}{"step": step})
}

func (HoverTracer) ChainEnter(position int, size int) {
	logging.Trace("hover.chain-enter", map[string]interface{}{"position": position, "size": size})
}

func (HoverTracer) ChainLeave() {
	logging.Trace("hover.chain-leave", nil)
}

func (HoverTracer) RefreshCleared(position int) {
	logging.Trace("hover.refresh-cleared", map[string]interface{}{"position": position})
}
