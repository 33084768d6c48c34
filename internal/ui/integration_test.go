package ui

import (
	"strings"
	"testing"
	"time"

	uistate "github.com/jiangshengdev/lis-explorer/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// TestFullSession walks a realistic session: resize, auto-play to the end,
// inspect a chain, rewrite the input, and step through the fresh trace.
func TestFullSession(t *testing.T) {
	h := NewHarness(NewModel([]int{3, 1, 4, 1, 5}, time.Millisecond, 0, 0, true, false))
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 24})

	// The duplicate 1 was replaced with a placeholder at parse time; here the
	// raw values come straight in, so the engine records a skip step instead.
	h.SendKey(" ")
	m := h.Model()
	if m.exp.Playing() {
		t.Fatalf("playback should have exhausted the trace")
	}
	view := h.View()
	if !strings.Contains(view, "step 5/5") {
		t.Fatalf("expected final step after playback, got:\n%s", view)
	}
	if !strings.Contains(view, "LIS:") {
		t.Fatalf("expected result summary after playback, got:\n%s", view)
	}

	h.SendKey("tab")
	h.SendKey("up")
	if got := len(m.exp.HoveredChain()); got != 2 {
		t.Fatalf("expected a two-element chain hovered, got %d", got)
	}

	// Stepping back refreshes the hover against the new snapshot: position 1
	// still exists there and resolves to the same chain ending at index 2.
	h.SendKey("left")
	if got := m.exp.HoveredChain(); !chainEndsAt(got, 2) {
		t.Fatalf("expected refreshed chain ending at index 2, got %v", got)
	}

	h.SendKey("e")
	m.editor.SetValue("10, 20, 30")
	h.SendKey("enter")

	if st := m.exp.NavigatorState(); st.TotalSteps != 4 || st.CurrentStep != 0 {
		t.Fatalf("expected fresh 4-step trace at step 0, got %d/%d", st.CurrentStep, st.TotalSteps)
	}
	if len(m.exp.HoveredChain()) != 0 || m.region != uistate.RegionNone {
		t.Fatalf("hover state must clear with the new trace")
	}

	h.SendKey("right")
	h.SendKey("right")
	h.SendKey("right")
	view = h.View()
	if !strings.Contains(view, "step 3/3") || !strings.Contains(view, "LIS: 10 20 30 (length 3)") {
		t.Fatalf("expected strictly increasing input to keep every element, got:\n%s", view)
	}
}

func chainEndsAt(chain []int, idx int) bool {
	return len(chain) > 0 && chain[len(chain)-1] == idx
}
