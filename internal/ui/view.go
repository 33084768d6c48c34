package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jiangshengdev/lis-explorer/internal/trace"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	cellMargin   = 2
	minCellWidth = 4
	headerSep    = " → "
)

// Fixed row positions; the mouse hit-testing in mouse.go relies on the view
// always rendering these rows at the same y coordinates.
const (
	rowHeader    = 0
	rowIndexes   = 2
	rowArray     = 3
	rowSeqTitle  = 5
	rowSequence  = 6
	rowPredTitle = 8
	rowPreds     = 9
	rowStatus    = 11
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; use ANSI-aware truncation
}

// geometry describes the cell grid shared by the rendered rows and the mouse
// hit-testing.
type geometry struct {
	cellW   int
	visible int // number of array cells in the viewport; 0 means all
	offset  int // viewport offset into the input array
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeEdit {
		return m.viewEditor()
	}
	return m.viewTrace()
}

func (m *Model) viewTrace() string {
	snap, hasSnap := m.exp.CurrentStep()
	geo := m.geometry()

	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.header(), raw: true})
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.indexRow(geo), raw: true})
	lines = append(lines, styledLine{text: m.arrayRow(geo, snap, hasSnap), raw: true})
	lines = append(lines, styledLine{})

	seqTitle := "sequence (smallest tails)"
	lines = append(lines, styledLine{text: seqTitle, style: m.titleStyle(m.exp.SequenceHovered())})
	lines = append(lines, m.sequenceRow(geo, snap, hasSnap))
	lines = append(lines, styledLine{})

	predTitle := "predecessors"
	lines = append(lines, styledLine{text: predTitle, style: m.titleStyle(m.exp.PredecessorsHovered())})
	lines = append(lines, m.predecessorsRow(geo, snap, hasSnap))
	lines = append(lines, styledLine{})

	lines = append(lines, styledLine{text: m.statusLine(), raw: true})

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Error: " + m.errMsg, style: styles.Error})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{
			text:  "←/→ step  space play  ,/. cell  enter seek  tab hover  ↑/↓ chain  e edit  +/- speed  q quit",
			style: styles.Footer,
		})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) viewEditor() string {
	lines := []styledLine{
		{text: "lis explorer" + headerSep + "edit input", style: styles.Header},
		{},
		{text: "Enter a comma-separated sequence; -1 marks a placeholder. Repeated values become placeholders.", style: styles.EditHelp},
		{},
		{text: m.editor.View(), raw: true},
		{},
		{text: "Press Enter to apply. Esc to cancel.", style: styles.EditHelp},
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{}, styledLine{text: "Error: " + m.errMsg, style: styles.Error})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) header() string {
	st := m.exp.NavigatorState()
	crumb := "lis explorer" + headerSep + fmt.Sprintf("step %d/%d", st.CurrentStep, st.TotalSteps-1)
	line := render(styles.Header, crumb)
	if snap, ok := m.exp.CurrentStep(); ok {
		line += render(styles.Header, headerSep) + render(styles.Action, snap.Action.String())
	}
	return line
}

// geometry computes the shared cell grid. The cell width follows the widest
// value so columns stay aligned across the array, sequence, and predecessor
// rows.
func (m *Model) geometry() geometry {
	input := m.exp.Trace().Input
	w := minCellWidth
	for _, v := range input {
		if cw := len(strconv.Itoa(v)) + 2; cw > w {
			w = cw
		}
	}
	for i := range input {
		if cw := len(strconv.Itoa(i)) + 2; cw > w {
			w = cw
		}
	}
	geo := geometry{cellW: w}
	if m.width > 0 {
		geo.visible = (m.width - cellMargin) / geo.cellW
		if geo.visible < 1 {
			geo.visible = 1
		}
	}
	if geo.visible > 0 && len(input) > geo.visible {
		m.element.EnsureVisible(geo.visible)
		geo.offset = m.element.ViewportOffset
	}
	return geo
}

func (g geometry) window(total int) (start, end int) {
	start = g.offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end = total
	if g.visible > 0 && start+g.visible < total {
		end = start + g.visible
	}
	return start, end
}

func (g geometry) cell(text string) string {
	pad := g.cellW - len([]rune(text)) - 1
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text + " "
}

func (m *Model) indexRow(geo geometry) string {
	input := m.exp.Trace().Input
	start, end := geo.window(len(input))
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", cellMargin))
	for i := start; i < end; i++ {
		cell := geo.cell(strconv.Itoa(i))
		if i == m.element.Pos {
			b.WriteString(render(styles.CurrentCell, cell))
		} else {
			b.WriteString(render(styles.IndexLabel, cell))
		}
	}
	return b.String()
}

func (m *Model) arrayRow(geo geometry, snap trace.Snapshot, hasSnap bool) string {
	input := m.exp.Trace().Input
	if len(input) == 0 {
		return strings.Repeat(" ", cellMargin) + render(styles.Info, "(empty sequence)")
	}
	start, end := geo.window(len(input))
	hovered := toSet(m.exp.HoveredChain())
	inSequence := map[int]bool{}
	if hasSnap {
		for _, idx := range snap.Sequence {
			inSequence[idx] = true
		}
	}
	result := map[int]bool{}
	if st := m.exp.NavigatorState(); st.CurrentStep == st.TotalSteps-1 {
		for _, idx := range m.exp.Trace().Result {
			result[idx] = true
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", cellMargin))
	for i := start; i < end; i++ {
		text := strconv.Itoa(input[i])
		if input[i] == trace.Sentinel {
			text = "·"
		}
		cell := geo.cell(text)
		switch {
		case hasSnap && snap.CurrentIndex == i:
			b.WriteString(render(styles.CurrentCell, cell))
		case hovered[i]:
			b.WriteString(render(styles.ChainCell, cell))
		case result[i]:
			b.WriteString(render(styles.ResultCell, cell))
		case inSequence[i]:
			b.WriteString(render(styles.SequenceCell, cell))
		case input[i] == trace.Sentinel:
			b.WriteString(render(styles.Placeholder, cell))
		default:
			b.WriteString(render(styles.Cell, cell))
		}
	}
	return b.String()
}

func (m *Model) sequenceRow(geo geometry, snap trace.Snapshot, hasSnap bool) styledLine {
	if !hasSnap || len(snap.Sequence) == 0 {
		return styledLine{text: strings.Repeat(" ", cellMargin) + "(empty)", style: styles.Info}
	}
	input := m.exp.Trace().Input
	hoveredPos := -1
	if info, ok := m.exp.HoveredChainInfo(); ok {
		hoveredPos = info.Position
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", cellMargin))
	for pos, idx := range snap.Sequence {
		cell := geo.cell(strconv.Itoa(input[idx]))
		if pos == hoveredPos {
			b.WriteString(render(styles.ChainCell, cell))
		} else {
			b.WriteString(render(styles.SequenceCell, cell))
		}
	}
	return styledLine{text: b.String(), raw: true}
}

func (m *Model) predecessorsRow(geo geometry, snap trace.Snapshot, hasSnap bool) styledLine {
	input := m.exp.Trace().Input
	if !hasSnap || len(input) == 0 {
		return styledLine{text: strings.Repeat(" ", cellMargin) + "(empty)", style: styles.Info}
	}
	start, end := geo.window(len(input))
	hovered := toSet(m.exp.HoveredChain())
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", cellMargin))
	for i := start; i < end; i++ {
		text := "·"
		if i < len(snap.Predecessors) && snap.Predecessors[i] != -1 {
			text = strconv.Itoa(snap.Predecessors[i])
		}
		cell := geo.cell(text)
		if hovered[i] {
			b.WriteString(render(styles.ChainCell, cell))
		} else {
			b.WriteString(render(styles.IndexLabel, cell))
		}
	}
	return styledLine{text: b.String(), raw: true}
}

func (m *Model) statusLine() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", cellMargin))
	if m.exp.Playing() {
		b.WriteString(render(styles.PlayingBadge, " ▶ playing "))
	} else {
		b.WriteString(render(styles.StoppedBadge, " ■ stopped "))
	}
	b.WriteString(render(styles.Info, fmt.Sprintf("  every %s", m.exp.Speed())))
	st := m.exp.NavigatorState()
	if st.CurrentStep == st.TotalSteps-1 {
		tr := m.exp.Trace()
		values := make([]string, len(tr.Result))
		for i, idx := range tr.Result {
			values[i] = strconv.Itoa(tr.Input[idx])
		}
		b.WriteString(render(styles.ResultCell, fmt.Sprintf("  LIS: %s (length %d)", strings.Join(values, " "), len(tr.Result))))
	}
	return b.String()
}

func (m *Model) titleStyle(hovered bool) *lipgloss.Style {
	if hovered {
		return styles.HoveredTitle
	}
	return styles.PanelTitle
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func toSet(values []int) map[int]bool {
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
