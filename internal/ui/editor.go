package ui

import (
	"github.com/jiangshengdev/lis-explorer/internal/logging/events"
	"github.com/jiangshengdev/lis-explorer/internal/parse"
	tea "github.com/charmbracelet/bubbletea"
)

// startEdit opens the sequence editor seeded with the current input in its
// canonical form.
func (m *Model) startEdit() {
	m.editor.SetValue(parse.Format(m.exp.Trace().Input))
	m.editor.CursorEnd()
	m.editor.Focus()
	m.errMsg = ""
	m.forceClearInfo()
	m.mode = ModeEdit
}

// handleEditMode owns every message while the editor is open. Enter applies,
// esc cancels, anything else feeds the text input.
func (m *Model) handleEditMode(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return true, cmd
	}
	switch keyMsg.String() {
	case "ctrl+c":
		m.exp.Dispose()
		return true, tea.Quit
	case "esc":
		m.closeEditor()
		return true, nil
	case "enter":
		m.applyEdit()
		return true, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return true, cmd
}

// applyEdit parses the entered text. A parse failure keeps the editor open
// with the error inline and leaves the existing trace and navigation state
// untouched; success replaces the trace through the explorer, which stops
// playback first.
func (m *Model) applyEdit() {
	text := m.editor.Value()
	values, err := parse.Sequence(text)
	if err != nil {
		m.errMsg = err.Error()
		events.UI.EditRejected(text, err.Error())
		return
	}
	m.exp.SetInput(values)
	m.syncAfterInputChange()
	events.UI.EditApplied(text, len(values))
	m.closeEditor()
	if m.verbose {
		m.setInfo("Trace recomputed.")
	}
}

func (m *Model) closeEditor() {
	m.editor.Blur()
	m.errMsg = ""
	m.mode = ModeView
}
