// Package hover owns interaction-only state: which chain, if any, is hovered,
// and whether the sequence or predecessors panel is hovered. Chains are cheap
// to derive, so they are rebuilt from the current snapshot on every
// navigation instead of cached — a stale chain must never be shown.
package hover

import "github.com/jiangshengdev/lis-explorer/internal/trace"

// StepSource is the navigator capability the manager needs: a current
// snapshot lookup. Keeping it this narrow lets tests drive the manager with
// a stub.
type StepSource interface {
	CurrentStep() (trace.Snapshot, bool)
}

// ChainInfo identifies the sequence position a hovered chain was derived
// from.
type ChainInfo struct {
	Position int
}

// Manager tracks the hover state. It has a single owner and is mutated only
// through the methods below.
type Manager struct {
	chainIndexes        []int
	chainInfo           *ChainInfo
	sequenceHovered     bool
	predecessorsHovered bool
}

func New() *Manager {
	return &Manager{}
}

// EnterChain records the hovered chain verbatim. The caller computed the
// chain against the snapshot it is currently displaying; Refresh keeps it in
// step from then on.
func (m *Manager) EnterChain(indexes []int, position int) {
	m.chainIndexes = append(m.chainIndexes[:0], indexes...)
	m.chainInfo = &ChainInfo{Position: position}
}

// LeaveChain clears the chain hover state.
func (m *Manager) LeaveChain() {
	m.chainIndexes = nil
	m.chainInfo = nil
}

func (m *Manager) EnterSequence()      { m.sequenceHovered = true }
func (m *Manager) LeaveSequence()      { m.sequenceHovered = false }
func (m *Manager) EnterPredecessors()  { m.predecessorsHovered = true }
func (m *Manager) LeavePredecessors()  { m.predecessorsHovered = false }
func (m *Manager) SequenceHovered() bool     { return m.sequenceHovered }
func (m *Manager) PredecessorsHovered() bool { return m.predecessorsHovered }

// ChainIndexes returns the hovered chain, empty when nothing is hovered.
func (m *Manager) ChainIndexes() []int {
	return m.chainIndexes
}

// Chain reports the hovered chain position, if any.
func (m *Manager) Chain() (ChainInfo, bool) {
	if m.chainInfo == nil {
		return ChainInfo{}, false
	}
	return *m.chainInfo, true
}

// Refresh must be called after every navigator movement. With no active chain
// hover it does nothing. Otherwise it rebuilds the chain for the recorded
// position against the snapshot now shown, or clears the hover entirely when
// that position no longer exists there.
func (m *Manager) Refresh(src StepSource) {
	if m.chainInfo == nil {
		return
	}
	snap, ok := src.CurrentStep()
	if !ok {
		m.LeaveChain()
		return
	}
	chain := trace.Chain(snap, m.chainInfo.Position)
	if chain == nil {
		m.LeaveChain()
		return
	}
	m.chainIndexes = chain
}
