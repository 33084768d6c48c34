package navigator

import (
	"testing"

	"github.com/jiangshengdev/lis-explorer/internal/trace"
)

func newTestNavigator(t *testing.T, input []int) *Navigator {
	t.Helper()
	return New(trace.Compute(input))
}

func TestNextStopsAtEnd(t *testing.T) {
	nav := newTestNavigator(t, []int{2, 1, 3})
	total := nav.State().TotalSteps
	for i := 0; i < total-1; i++ {
		if _, ok := nav.Next(); !ok {
			t.Fatalf("expected step %d to exist", i+1)
		}
	}
	state := nav.State()
	if state.CanGoForward {
		t.Fatalf("expected CanGoForward false at the last step")
	}
	if _, ok := nav.Next(); ok {
		t.Fatalf("expected Next past the end to be a no-op")
	}
	if nav.State().CurrentStep != total-1 {
		t.Fatalf("cursor moved past the end: %d", nav.State().CurrentStep)
	}
}

func TestPrevStopsAtStart(t *testing.T) {
	nav := newTestNavigator(t, []int{5})
	if _, ok := nav.Prev(); ok {
		t.Fatalf("expected Prev at the init step to be a no-op")
	}
	if state := nav.State(); state.CanGoBack {
		t.Fatalf("expected CanGoBack false at the init step")
	}
	nav.Next()
	if snap, ok := nav.Prev(); !ok || snap.StepIndex != 0 {
		t.Fatalf("expected Prev back to the init step, got %v ok=%v", snap, ok)
	}
}

func TestGoToRoundTrip(t *testing.T) {
	nav := newTestNavigator(t, []int{4, 2, 6, 1})
	total := nav.State().TotalSteps
	for k := 0; k < total; k++ {
		snap, ok := nav.GoTo(k)
		if !ok {
			t.Fatalf("GoTo(%d) failed", k)
		}
		if snap.StepIndex != k || nav.State().CurrentStep != k {
			t.Fatalf("GoTo(%d): cursor %d, snapshot step %d", k, nav.State().CurrentStep, snap.StepIndex)
		}
	}
}

func TestGoToOutOfRangeIsNoOp(t *testing.T) {
	nav := newTestNavigator(t, []int{4, 2})
	nav.GoTo(1)
	before := nav.State().CurrentStep
	if _, ok := nav.GoTo(-1); ok {
		t.Fatalf("expected GoTo(-1) to fail")
	}
	if _, ok := nav.GoTo(nav.State().TotalSteps); ok {
		t.Fatalf("expected GoTo(total) to fail")
	}
	if nav.State().CurrentStep != before {
		t.Fatalf("out-of-range GoTo moved the cursor: %d -> %d", before, nav.State().CurrentStep)
	}
}

func TestPreviousAtInit(t *testing.T) {
	nav := newTestNavigator(t, []int{1, 2})
	if _, ok := nav.Previous(); ok {
		t.Fatalf("the init step has no previous snapshot")
	}
	nav.Next()
	prev, ok := nav.Previous()
	if !ok || prev.StepIndex != 0 {
		t.Fatalf("expected previous snapshot at step 0, got %v ok=%v", prev, ok)
	}
}

func TestResetAndGoToEnd(t *testing.T) {
	nav := newTestNavigator(t, []int{3, 1, 2})
	snap, ok := nav.GoToEnd()
	if !ok || snap.StepIndex != nav.State().TotalSteps-1 {
		t.Fatalf("expected GoToEnd at the last step, got %v ok=%v", snap, ok)
	}
	nav.Reset()
	if nav.State().CurrentStep != 0 {
		t.Fatalf("expected cursor 0 after Reset, got %d", nav.State().CurrentStep)
	}
}
