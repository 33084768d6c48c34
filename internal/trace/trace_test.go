package trace

import (
	"reflect"
	"testing"
)

func valuesAt(input, indices []int) []int {
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = input[idx]
	}
	return out
}

// lisLengthQuadratic is the O(n²) reference used to cross-check the engine.
func lisLengthQuadratic(input []int) int {
	best := 0
	lengths := make([]int, len(input))
	for i, v := range input {
		if v == Sentinel {
			continue
		}
		lengths[i] = 1
		for j := 0; j < i; j++ {
			if input[j] != Sentinel && input[j] < v && lengths[j]+1 > lengths[i] {
				lengths[i] = lengths[j] + 1
			}
		}
		if lengths[i] > best {
			best = lengths[i]
		}
	}
	return best
}

func TestComputeKnownSequence(t *testing.T) {
	input := []int{2, 1, 3, 0, 4}
	tr := Compute(input)
	if got := valuesAt(input, tr.Result); !reflect.DeepEqual(got, []int{1, 3, 4}) {
		t.Fatalf("expected result values [1 3 4], got %v (indices %v)", got, tr.Result)
	}
	if len(tr.Steps) != len(input)+1 {
		t.Fatalf("expected %d steps, got %d", len(input)+1, len(tr.Steps))
	}
}

func TestComputeSentinelSkips(t *testing.T) {
	input := []int{2, 1, Sentinel, 0, 4}
	tr := Compute(input)
	step := tr.Steps[3] // corresponds to input[2]
	if step.Action.Kind != ActionSkip || step.Action.Index != 2 {
		t.Fatalf("expected skip of index 2, got %v", step.Action)
	}
	prev := tr.Steps[2]
	if !reflect.DeepEqual(step.Sequence, prev.Sequence) {
		t.Fatalf("sequence changed across a skip: %v -> %v", prev.Sequence, step.Sequence)
	}
	if !reflect.DeepEqual(step.Predecessors, prev.Predecessors) {
		t.Fatalf("predecessors changed across a skip: %v -> %v", prev.Predecessors, step.Predecessors)
	}
}

func TestComputeEmptyInput(t *testing.T) {
	tr := Compute(nil)
	if len(tr.Steps) != 1 {
		t.Fatalf("expected only the init step, got %d steps", len(tr.Steps))
	}
	if tr.Steps[0].Action.Kind != ActionInit {
		t.Fatalf("expected init action, got %v", tr.Steps[0].Action)
	}
	if len(tr.Result) != 0 {
		t.Fatalf("expected empty result, got %v", tr.Result)
	}
}

func TestComputeActions(t *testing.T) {
	input := []int{3, 1, 4, 1, 5}
	// input[3] duplicates input[1]; fed directly (bypassing the parser) the
	// engine must absorb it as a skip without mutating state.
	tr := Compute(input)
	kinds := make([]ActionKind, 0, len(tr.Steps))
	for _, step := range tr.Steps {
		kinds = append(kinds, step.Action.Kind)
	}
	want := []ActionKind{ActionInit, ActionAppend, ActionReplace, ActionAppend, ActionSkip, ActionAppend}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("expected actions %v, got %v", want, kinds)
	}
	dupStep := tr.Steps[4]
	prev := tr.Steps[3]
	if !reflect.DeepEqual(dupStep.Sequence, prev.Sequence) {
		t.Fatalf("duplicate value mutated the sequence: %v -> %v", prev.Sequence, dupStep.Sequence)
	}
}

func TestComputeResultStrictlyIncreasing(t *testing.T) {
	cases := [][]int{
		{2, 1, 3, 0, 4},
		{0, 1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1, 0},
		{10, 22, 9, 33, 21, 50, 41, 60},
		{Sentinel, Sentinel, Sentinel},
		{7},
		{3, Sentinel, 1, Sentinel, 4, 1, 5},
	}
	for _, input := range cases {
		tr := Compute(input)
		values := valuesAt(input, tr.Result)
		for i := 1; i < len(values); i++ {
			if values[i-1] >= values[i] {
				t.Fatalf("input %v: result %v not strictly increasing", input, values)
			}
		}
		for i := 1; i < len(tr.Result); i++ {
			if tr.Result[i-1] >= tr.Result[i] {
				t.Fatalf("input %v: result indices %v not positionally increasing", input, tr.Result)
			}
		}
		if want := lisLengthQuadratic(input); len(tr.Result) != want {
			t.Fatalf("input %v: result length %d, reference says %d", input, len(tr.Result), want)
		}
	}
}

func TestComputeSequenceLengthMonotone(t *testing.T) {
	input := []int{10, 22, 9, 33, 21, 50, Sentinel, 41, 60, 1}
	tr := Compute(input)
	last := 0
	for _, step := range tr.Steps {
		if len(step.Sequence) < last {
			t.Fatalf("sequence length shrank at step %d: %d -> %d", step.StepIndex, last, len(step.Sequence))
		}
		last = len(step.Sequence)
	}
	if last != len(tr.Result) {
		t.Fatalf("final sequence length %d does not match result length %d", last, len(tr.Result))
	}
}

func TestSnapshotsAreIndependentCopies(t *testing.T) {
	tr := Compute([]int{1, 2, 3})
	tr.Steps[1].Sequence[0] = 99
	if tr.Steps[2].Sequence[0] == 99 {
		t.Fatalf("snapshots share backing storage")
	}
}

func TestActionString(t *testing.T) {
	cases := []struct {
		action Action
		want   string
	}{
		{InitAction(), "init"},
		{AppendAction(3), "append input[3]"},
		{ReplaceAction(1, 4), "replace sequence[1] with input[4]"},
		{SkipAction(2), "skip input[2]"},
	}
	for _, tc := range cases {
		if got := tc.action.String(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}
