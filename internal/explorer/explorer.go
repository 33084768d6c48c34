// Package explorer composes the trace engine, step navigator, hover manager,
// and playback controller behind one seam and dispatches every external input
// to the right operation. It guards the two ordering invariants the pieces
// cannot see on their own: playback stops before a trace is replaced, and
// every cursor movement is followed by a hover refresh and then exactly one
// observer notification — in that order.
package explorer

import (
	"time"

	"github.com/jiangshengdev/lis-explorer/internal/hover"
	"github.com/jiangshengdev/lis-explorer/internal/logging/events"
	"github.com/jiangshengdev/lis-explorer/internal/navigator"
	"github.com/jiangshengdev/lis-explorer/internal/playback"
	"github.com/jiangshengdev/lis-explorer/internal/trace"
)

// Observer is notified after every state change worth repainting.
type Observer func()

// Explorer is the single owner of all mutable visualizer state. The rendering
// layer reads plain data through the accessors and calls the control
// operations; nothing reaches into component internals.
type Explorer struct {
	tr     *trace.Trace
	nav    *navigator.Navigator
	hov    *hover.Manager
	play   *playback.Controller
	notify Observer
}

// New computes the trace for the initial input and wires the components.
// notify may be nil (useful in tests that only assert state).
func New(input []int, speed time.Duration, notify Observer) *Explorer {
	e := &Explorer{
		hov:    hover.New(),
		notify: notify,
	}
	e.play = playback.New(advancer{e}, speed, e.afterMove)
	e.install(input)
	return e
}

// advancer adapts the explorer's current navigator to the playback
// controller's capability interface. Indirection matters: the navigator is
// replaced on input change, the controller is not.
type advancer struct{ e *Explorer }

func (a advancer) Advance() bool {
	_, ok := a.e.nav.Next()
	return ok
}

func (e *Explorer) install(input []int) {
	e.tr = trace.Compute(input)
	e.nav = navigator.New(e.tr)
	events.Engine.Computed(len(e.tr.Input), len(e.tr.Steps), len(e.tr.Result))
}

// SetInput replaces the input sequence. Playback is stopped first so no
// in-flight tick can advance a navigator that no longer matches the displayed
// trace; the hover refresh then clears any chain that does not exist in the
// new trace's init snapshot.
func (e *Explorer) SetInput(input []int) {
	e.play.Stop()
	e.install(input)
	e.afterMove()
}

// afterMove is the single post-movement path: hover refresh, then one
// notification. Never the reverse.
func (e *Explorer) afterMove() {
	before, hadChain := e.hov.Chain()
	e.hov.Refresh(e)
	if _, still := e.hov.Chain(); hadChain && !still {
		events.Hover.RefreshCleared(before.Position)
	}
	if e.notify != nil {
		e.notify()
	}
}

// CurrentStep satisfies hover.StepSource.
func (e *Explorer) CurrentStep() (trace.Snapshot, bool) {
	return e.nav.Current()
}

// PreviousStep returns the snapshot before the cursor, if any.
func (e *Explorer) PreviousStep() (trace.Snapshot, bool) {
	return e.nav.Previous()
}

// Trace returns the immutable trace for rendering.
func (e *Explorer) Trace() *trace.Trace {
	return e.tr
}

// NavigatorState returns the cursor projection.
func (e *Explorer) NavigatorState() navigator.State {
	return e.nav.State()
}

// Next advances one step. Manual navigation does not stop playback; the next
// tick simply continues from the new position.
func (e *Explorer) Next() bool {
	if _, ok := e.nav.Next(); !ok {
		events.Navigator.Blocked("next", e.nav.State().CurrentStep)
		return false
	}
	e.traceMove("next")
	e.afterMove()
	return true
}

// Prev moves one step back.
func (e *Explorer) Prev() bool {
	if _, ok := e.nav.Prev(); !ok {
		events.Navigator.Blocked("prev", e.nav.State().CurrentStep)
		return false
	}
	e.traceMove("prev")
	e.afterMove()
	return true
}

// Reset returns to the init step.
func (e *Explorer) Reset() {
	e.nav.Reset()
	e.traceMove("reset")
	e.afterMove()
}

// GoToEnd jumps to the final step.
func (e *Explorer) GoToEnd() {
	e.nav.GoToEnd()
	e.traceMove("end")
	e.afterMove()
}

// GoTo jumps to an arbitrary step; out-of-range indices are no-ops.
func (e *Explorer) GoTo(step int) bool {
	if _, ok := e.nav.GoTo(step); !ok {
		events.Navigator.Blocked("goto", e.nav.State().CurrentStep)
		return false
	}
	e.traceMove("goto")
	e.afterMove()
	return true
}

// SeekElement jumps to the step that processed input element i (step i+1;
// step 0 is the init snapshot). Manual seeking must not race auto-play, so
// playback stops first.
func (e *Explorer) SeekElement(i int) bool {
	e.play.Stop()
	if _, ok := e.nav.GoTo(i + 1); !ok {
		events.Navigator.Blocked("seek", e.nav.State().CurrentStep)
		return false
	}
	events.UI.Seek(i, i+1)
	e.afterMove()
	return true
}

func (e *Explorer) traceMove(op string) {
	st := e.nav.State()
	events.Navigator.Moved(op, st.CurrentStep, st.TotalSteps)
}

// TogglePlay flips playback. When playback starts, the returned epoch and
// interval describe the tick the host must schedule.
func (e *Explorer) TogglePlay() (playing bool, epoch int, interval time.Duration) {
	playing, epoch, interval = e.play.Toggle()
	if playing {
		events.Playback.Started(interval.Milliseconds())
	} else {
		events.Playback.Stopped()
	}
	if e.notify != nil {
		e.notify()
	}
	return playing, epoch, interval
}

// SetSpeed stores a new interval; while playing it re-arms so the new speed
// takes effect on the next tick. A restarted schedule is returned to the
// host.
func (e *Explorer) SetSpeed(interval time.Duration) (restarted bool, epoch int, newInterval time.Duration) {
	restarted, epoch, newInterval = e.play.SetSpeed(interval)
	events.Playback.SpeedChanged(newInterval.Milliseconds(), restarted)
	if e.notify != nil {
		e.notify()
	}
	return restarted, epoch, newInterval
}

// HandleTick delivers a timer tick to the playback controller. The Advanced
// path already refreshed and notified via the controller's step callback;
// exhaustion notifies once more so the stopped state is repainted.
func (e *Explorer) HandleTick(epoch int) playback.TickResult {
	result := e.play.Tick(epoch)
	if result == playback.TickExhausted {
		events.Playback.Exhausted(e.nav.State().CurrentStep)
		if e.notify != nil {
			e.notify()
		}
	}
	return result
}

// Playing reports whether auto-play is armed.
func (e *Explorer) Playing() bool {
	return e.play.Playing()
}

// Speed reports the current playback interval.
func (e *Explorer) Speed() time.Duration {
	return e.play.Interval()
}

// ChainAt derives the chain for a sequence position of the snapshot currently
// shown. Used by the rendering layer to build hover-enter payloads.
func (e *Explorer) ChainAt(position int) []int {
	snap, ok := e.nav.Current()
	if !ok {
		return nil
	}
	return trace.Chain(snap, position)
}

// EnterChain records a chain hover computed by the rendering layer.
func (e *Explorer) EnterChain(indexes []int, position int) {
	e.hov.EnterChain(indexes, position)
	events.Hover.ChainEnter(position, len(indexes))
	if e.notify != nil {
		e.notify()
	}
}

// LeaveChain clears the chain hover.
func (e *Explorer) LeaveChain() {
	e.hov.LeaveChain()
	events.Hover.ChainLeave()
	if e.notify != nil {
		e.notify()
	}
}

func (e *Explorer) EnterSequence() {
	e.hov.EnterSequence()
	events.UI.Region("sequence", true)
	if e.notify != nil {
		e.notify()
	}
}

func (e *Explorer) LeaveSequence() {
	e.hov.LeaveSequence()
	events.UI.Region("sequence", false)
	if e.notify != nil {
		e.notify()
	}
}

func (e *Explorer) EnterPredecessors() {
	e.hov.EnterPredecessors()
	events.UI.Region("predecessors", true)
	if e.notify != nil {
		e.notify()
	}
}

func (e *Explorer) LeavePredecessors() {
	e.hov.LeavePredecessors()
	events.UI.Region("predecessors", false)
	if e.notify != nil {
		e.notify()
	}
}

// Hover projections for rendering.
func (e *Explorer) HoveredChain() []int            { return e.hov.ChainIndexes() }
func (e *Explorer) HoveredChainInfo() (hover.ChainInfo, bool) { return e.hov.Chain() }
func (e *Explorer) SequenceHovered() bool          { return e.hov.SequenceHovered() }
func (e *Explorer) PredecessorsHovered() bool      { return e.hov.PredecessorsHovered() }

// Dispose stops playback for teardown. Idempotent and callable at any time.
func (e *Explorer) Dispose() {
	e.play.Dispose()
}
