package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestViewShowsResultAtFinalStep(t *testing.T) {
	h := newTestHarness(t, []int{2, 1, 3, 0, 4}, 0)

	if view := h.View(); strings.Contains(view, "LIS:") {
		t.Fatalf("result must not show before the final step, got:\n%s", view)
	}

	h.SendKey("end")
	view := h.View()
	if !strings.Contains(view, "LIS: 1 3 4 (length 3)") {
		t.Fatalf("expected result summary at the final step, got:\n%s", view)
	}
}

func TestViewShowsActionDescription(t *testing.T) {
	h := newTestHarness(t, []int{2, 1, 3, 0, 4}, 0)

	if view := h.View(); !strings.Contains(view, "init") {
		t.Fatalf("expected init action in header, got:\n%s", view)
	}

	h.SendKey("right")
	h.SendKey("right")
	if view := h.View(); !strings.Contains(view, "replace sequence[0] with input[1]") {
		t.Fatalf("expected replace action in header, got:\n%s", view)
	}
}

func TestViewRendersPlaceholderCells(t *testing.T) {
	h := newTestHarness(t, []int{2, -1, 3}, 0)

	if view := h.View(); !strings.Contains(view, "·") {
		t.Fatalf("expected placeholder dot for sentinel cell, got:\n%s", view)
	}
}

func TestViewShowsPlaybackBadge(t *testing.T) {
	h := newTestHarness(t, []int{2, 1, 3}, 0)

	if view := h.View(); !strings.Contains(view, "stopped") {
		t.Fatalf("expected stopped badge, got:\n%s", view)
	}
}

func TestViewRespectsWidth(t *testing.T) {
	h := NewHarness(NewModel([]int{12, 7, 345, 9, 88, 2, 61}, 0, 20, 0, true, false))

	for _, line := range strings.Split(h.View(), "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Fatalf("line wider than 20 cells (%d): %q", w, line)
		}
	}
}

func TestViewRespectsHeight(t *testing.T) {
	h := NewHarness(NewModel([]int{2, 1, 3, 0, 4}, 0, 0, 6, true, false))

	if got := len(strings.Split(h.View(), "\n")); got > 6 {
		t.Fatalf("expected at most 6 lines, got %d", got)
	}
}

func TestViewFooterToggle(t *testing.T) {
	withFooter := NewHarness(NewModel([]int{2, 1, 3}, 0, 0, 0, true, false))
	if view := withFooter.View(); !strings.Contains(view, "q quit") {
		t.Fatalf("expected footer hints, got:\n%s", view)
	}

	without := NewHarness(NewModel([]int{2, 1, 3}, 0, 0, 0, false, false))
	if view := without.View(); strings.Contains(view, "q quit") {
		t.Fatalf("footer rendered despite being disabled:\n%s", view)
	}
}

func TestViewEmptySequencePanel(t *testing.T) {
	h := newTestHarness(t, []int{5}, 0)

	if view := h.View(); !strings.Contains(view, "(empty)") {
		t.Fatalf("expected empty sequence placeholder on the init step, got:\n%s", view)
	}
}
