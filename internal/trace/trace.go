// Package trace runs the patience-style longest-increasing-subsequence
// algorithm over an integer sequence and records one immutable snapshot per
// processed element. The recorded trace is the sole input to the navigator,
// hover, and rendering layers; nothing here depends on them.
package trace

import "sort"

// Sentinel marks a placeholder element. It is never compared for increasing
// order and never deduplicated against other placeholders.
const Sentinel = -1

// Snapshot records the algorithm state after processing one input element
// (or before processing any, for the init step). Sequence and Predecessors
// are independent copies; a Snapshot never changes once recorded.
type Snapshot struct {
	StepIndex    int
	CurrentIndex int // index into the input, -1 for the init step
	CurrentValue int
	Action       Action
	Sequence     []int // Sequence[k] = input index holding the smallest tail for length k+1
	Predecessors []int // Predecessors[i] = previous index in the run ending at i, or -1
}

// Trace is the full recorded history: Steps[0] is the init snapshot and
// Steps[i+1] corresponds to having processed Input[i]. Result is the final
// LIS as input indices in increasing positional order.
type Trace struct {
	Input  []int
	Steps  []Snapshot
	Result []int
}

// Compute runs the greedy + binary-search LIS algorithm (O(n log n)) and
// records every intermediate state. It is total over any integer sequence:
// sentinels and empty input degrade to an empty result. Duplicate
// non-sentinel values are expected to have been replaced by sentinels
// upstream; if one slips through it is absorbed as a skip.
func Compute(input []int) *Trace {
	n := len(input)
	predecessors := make([]int, n)
	for i := range predecessors {
		predecessors[i] = -1
	}
	sequence := make([]int, 0, n)

	steps := make([]Snapshot, 0, n+1)
	steps = append(steps, Snapshot{
		StepIndex:    0,
		CurrentIndex: -1,
		CurrentValue: Sentinel,
		Action:       InitAction(),
		Sequence:     cloneInts(sequence),
		Predecessors: cloneInts(predecessors),
	})

	for i, v := range input {
		action := SkipAction(i)
		if v != Sentinel {
			if len(sequence) == 0 || v > input[sequence[len(sequence)-1]] {
				if len(sequence) > 0 {
					predecessors[i] = sequence[len(sequence)-1]
				}
				sequence = append(sequence, i)
				action = AppendAction(i)
			} else {
				// Lower bound on the values stored at the sequence indices:
				// first position whose value is >= v. Keeps the tails sorted
				// and minimal.
				p := sort.Search(len(sequence), func(k int) bool {
					return input[sequence[k]] >= v
				})
				if v < input[sequence[p]] {
					if p > 0 {
						predecessors[i] = sequence[p-1]
					}
					sequence[p] = i
					action = ReplaceAction(p, i)
				}
				// Equal value: upstream deduplication should prevent this,
				// but absorb it as a skip rather than corrupt the tails.
			}
		}
		steps = append(steps, Snapshot{
			StepIndex:    i + 1,
			CurrentIndex: i,
			CurrentValue: v,
			Action:       action,
			Sequence:     cloneInts(sequence),
			Predecessors: cloneInts(predecessors),
		})
	}

	return &Trace{
		Input:  cloneInts(input),
		Steps:  steps,
		Result: reconstruct(sequence, predecessors),
	}
}

// reconstruct walks the predecessor links backward from the longest tail and
// reverses the collected indices.
func reconstruct(sequence, predecessors []int) []int {
	if len(sequence) == 0 {
		return []int{}
	}
	indices := make([]int, 0, len(sequence))
	for at := sequence[len(sequence)-1]; at != -1; at = predecessors[at] {
		indices = append(indices, at)
	}
	reverseInts(indices)
	return indices
}

func cloneInts(values []int) []int {
	dup := make([]int, len(values))
	copy(dup, values)
	return dup
}

func reverseInts(values []int) {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
}
