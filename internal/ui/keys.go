package ui

import (
	"fmt"
	"time"

	"github.com/jiangshengdev/lis-explorer/internal/logging/events"
	uistate "github.com/jiangshengdev/lis-explorer/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minSpeed = 50 * time.Millisecond
	maxSpeed = 5 * time.Second
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.mode != ModeView {
		return nil
	}
	key := keyMsg.String()
	events.UI.Key(key)
	switch key {
	case "ctrl+c", "q":
		m.exp.Dispose()
		return tea.Quit
	case "esc":
		m.leaveRegion()
	case " ":
		return startPlaybackCmd(m.exp.TogglePlay())
	case "right", "n":
		if !m.exp.Next() && m.verbose {
			m.setInfo("Already at the final step.")
		}
	case "left", "p":
		if !m.exp.Prev() && m.verbose {
			m.setInfo("Already at the first step.")
		}
	case "home", "r":
		m.exp.Reset()
	case "end", "G":
		m.exp.GoToEnd()
	case "+", "=":
		return m.changeSpeed(m.exp.Speed() / 2)
	case "-", "_":
		return m.changeSpeed(m.exp.Speed() * 2)
	case "tab":
		m.cycleRegion()
	case "up":
		m.moveChainHover(1)
	case "down":
		m.moveChainHover(-1)
	case ",", "<":
		m.element.Left()
	case ".", ">":
		m.element.Right()
	case "enter":
		m.seekToElementCursor()
	case "e", "i":
		m.startEdit()
	}
	return nil
}

func (m *Model) changeSpeed(interval time.Duration) tea.Cmd {
	if interval < minSpeed {
		interval = minSpeed
	}
	if interval > maxSpeed {
		interval = maxSpeed
	}
	restarted, epoch, newInterval := m.exp.SetSpeed(interval)
	if m.verbose {
		m.setInfo(fmt.Sprintf("Speed set to %s.", newInterval))
	}
	if !restarted {
		return nil
	}
	return scheduleTick(epoch, newInterval)
}

// cycleRegion moves the keyboard hover focus none → sequence → predecessors
// → none, firing the same enter/leave operations mouse motion would.
func (m *Model) cycleRegion() {
	m.applyRegion(m.region.Next())
}

func (m *Model) leaveRegion() {
	m.applyRegion(uistate.RegionNone)
}

func (m *Model) applyRegion(next uistate.Region) {
	if next == m.region {
		return
	}
	switch m.region {
	case uistate.RegionSequence:
		m.exp.LeaveChain()
		m.exp.LeaveSequence()
	case uistate.RegionPredecessors:
		m.exp.LeavePredecessors()
	}
	m.region = next
	switch next {
	case uistate.RegionSequence:
		m.exp.EnterSequence()
		m.hoverChainAt(m.chainPos)
	case uistate.RegionPredecessors:
		m.exp.EnterPredecessors()
	}
}

// moveChainHover shifts the hovered sequence position while the keyboard
// focus is on the sequence panel. Each move re-enters the chain computed for
// the snapshot currently displayed.
func (m *Model) moveChainHover(delta int) {
	if m.region != uistate.RegionSequence {
		return
	}
	snap, ok := m.exp.CurrentStep()
	if !ok || len(snap.Sequence) == 0 {
		return
	}
	pos := m.chainPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(snap.Sequence) {
		pos = len(snap.Sequence) - 1
	}
	m.hoverChainAt(pos)
}

// hoverChainAt records a chain hover for the given position, clamped into
// the displayed snapshot's sequence. With an empty sequence there is nothing
// to hover.
func (m *Model) hoverChainAt(pos int) {
	snap, ok := m.exp.CurrentStep()
	if !ok || len(snap.Sequence) == 0 {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(snap.Sequence) {
		pos = len(snap.Sequence) - 1
	}
	m.chainPos = pos
	m.exp.EnterChain(m.exp.ChainAt(pos), pos)
}

// seekToElementCursor jumps to the step that processed the cell under the
// element cursor; step 0 is the init snapshot, so element i maps to step i+1.
func (m *Model) seekToElementCursor() {
	if m.element.Length == 0 {
		return
	}
	if !m.exp.SeekElement(m.element.Pos) {
		return
	}
	if m.verbose {
		m.setInfo(fmt.Sprintf("Jumped to step %d.", m.element.Pos+1))
	}
}
