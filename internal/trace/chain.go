package trace

// Chain returns the concrete increasing run implied by the snapshot's
// sequence entry at position: the input indices obtained by walking
// Predecessors backward from Sequence[position] and reversing. The run has
// length position+1. Returns nil when position is out of range for the
// snapshot's sequence.
func Chain(snap Snapshot, position int) []int {
	if position < 0 || position >= len(snap.Sequence) {
		return nil
	}
	indices := make([]int, 0, position+1)
	for at := snap.Sequence[position]; at != -1; at = snap.Predecessors[at] {
		indices = append(indices, at)
	}
	reverseInts(indices)
	return indices
}
