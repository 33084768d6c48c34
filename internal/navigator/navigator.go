// Package navigator provides a position cursor over a completed trace. One
// navigator wraps one trace; when the input changes the owner discards the
// pair together and creates both fresh.
package navigator

import "github.com/jiangshengdev/lis-explorer/internal/trace"

// State is a read-only projection of the cursor for rendering.
type State struct {
	CurrentStep  int
	TotalSteps   int
	CanGoBack    bool
	CanGoForward bool
}

// Navigator owns the single mutable cursor, always within [0, TotalSteps-1].
// All mutation goes through the named methods below; boundary moves are
// no-ops signalled by the bool return rather than errors.
type Navigator struct {
	trace  *trace.Trace
	cursor int
}

// New wraps a completed trace with the cursor at the init step. Traces always
// contain at least the init snapshot, so the cursor starts valid.
func New(tr *trace.Trace) *Navigator {
	return &Navigator{trace: tr}
}

// Trace exposes the wrapped trace for rendering. The trace is immutable.
func (n *Navigator) Trace() *trace.Trace {
	return n.trace
}

// State returns the current cursor projection.
func (n *Navigator) State() State {
	total := len(n.trace.Steps)
	return State{
		CurrentStep:  n.cursor,
		TotalSteps:   total,
		CanGoBack:    n.cursor > 0,
		CanGoForward: n.cursor < total-1,
	}
}

// Current returns the snapshot at the cursor.
func (n *Navigator) Current() (trace.Snapshot, bool) {
	return n.at(n.cursor)
}

// Previous returns the snapshot just before the cursor; the init step has no
// previous.
func (n *Navigator) Previous() (trace.Snapshot, bool) {
	return n.at(n.cursor - 1)
}

// Next advances the cursor and returns the new snapshot. At the end of the
// trace it is a no-op returning false, which callers such as auto-play use to
// detect exhaustion.
func (n *Navigator) Next() (trace.Snapshot, bool) {
	if n.cursor >= len(n.trace.Steps)-1 {
		return trace.Snapshot{}, false
	}
	n.cursor++
	return n.trace.Steps[n.cursor], true
}

// Prev moves the cursor back one step; a no-op at the init step.
func (n *Navigator) Prev() (trace.Snapshot, bool) {
	if n.cursor <= 0 {
		return trace.Snapshot{}, false
	}
	n.cursor--
	return n.trace.Steps[n.cursor], true
}

// GoTo jumps directly to stepIndex. Out-of-range indices leave the cursor
// unchanged and return false.
func (n *Navigator) GoTo(stepIndex int) (trace.Snapshot, bool) {
	if stepIndex < 0 || stepIndex >= len(n.trace.Steps) {
		return trace.Snapshot{}, false
	}
	n.cursor = stepIndex
	return n.trace.Steps[n.cursor], true
}

// GoToEnd jumps to the last recorded step.
func (n *Navigator) GoToEnd() (trace.Snapshot, bool) {
	return n.GoTo(len(n.trace.Steps) - 1)
}

// Reset returns the cursor to the init step. Always succeeds.
func (n *Navigator) Reset() {
	n.cursor = 0
}

func (n *Navigator) at(index int) (trace.Snapshot, bool) {
	if index < 0 || index >= len(n.trace.Steps) {
		return trace.Snapshot{}, false
	}
	return n.trace.Steps[index], true
}
