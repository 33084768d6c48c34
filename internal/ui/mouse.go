package ui

import (
	uistate "github.com/jiangshengdev/lis-explorer/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg translates cell-motion mouse events into hover and seek
// operations. It shares the geometry and fixed row positions with view.go so
// the hit-testing always matches what was last rendered.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.mode != ModeView {
		return nil
	}
	switch ev.Action {
	case tea.MouseActionMotion:
		m.mouseHover(ev.X, ev.Y)
	case tea.MouseActionPress:
		if ev.Button == tea.MouseButtonLeft {
			m.mouseClick(ev.X, ev.Y)
		}
	}
	return nil
}

func (m *Model) mouseHover(x, y int) {
	switch y {
	case rowSequence, rowSeqTitle:
		pos, hit := m.sequenceCellAt(x, y)
		if !hit {
			m.applyRegion(uistate.RegionNone)
			return
		}
		if pos != m.chainPos {
			m.chainPos = pos
		}
		if m.region != uistate.RegionSequence {
			m.applyRegion(uistate.RegionSequence)
			return
		}
		m.hoverChainAt(pos)
	case rowPreds, rowPredTitle:
		m.applyRegion(uistate.RegionPredecessors)
	default:
		m.applyRegion(uistate.RegionNone)
	}
}

func (m *Model) mouseClick(x, y int) {
	if y != rowArray && y != rowIndexes {
		return
	}
	idx, hit := m.arrayCellAt(x)
	if !hit {
		return
	}
	m.element.Pos = idx
	if m.exp.SeekElement(idx) && m.verbose {
		m.setInfo("Jumped to the step that processed this cell.")
	}
}

// arrayCellAt maps an x coordinate onto the array cell grid. Returns false
// when the coordinate falls in the left margin or past the last cell.
func (m *Model) arrayCellAt(x int) (int, bool) {
	input := m.exp.Trace().Input
	if len(input) == 0 || x < cellMargin {
		return 0, false
	}
	geo := m.geometry()
	start, end := geo.window(len(input))
	idx := start + (x-cellMargin)/geo.cellW
	if idx < start || idx >= end {
		return 0, false
	}
	return idx, true
}

// sequenceCellAt maps an x coordinate onto the sequence row. The title row
// counts as position zero so sweeping across the panel label still hovers.
func (m *Model) sequenceCellAt(x, y int) (int, bool) {
	snap, ok := m.exp.CurrentStep()
	if !ok || len(snap.Sequence) == 0 {
		return 0, false
	}
	if y == rowSeqTitle {
		return m.chainPos, true
	}
	if x < cellMargin {
		return 0, false
	}
	geo := m.geometry()
	pos := (x - cellMargin) / geo.cellW
	if pos >= len(snap.Sequence) {
		return 0, false
	}
	return pos, true
}
