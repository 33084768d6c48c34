package state

// Region identifies which hover region, if any, the keyboard focus sits on.
// Mouse motion drives the same explorer operations directly; this is the
// keyboard-accessible equivalent.
type Region int

const (
	RegionNone Region = iota
	RegionSequence
	RegionPredecessors
)

// Next cycles none → sequence → predecessors → none.
func (r Region) Next() Region {
	switch r {
	case RegionNone:
		return RegionSequence
	case RegionSequence:
		return RegionPredecessors
	default:
		return RegionNone
	}
}

func (r Region) String() string {
	switch r {
	case RegionSequence:
		return "sequence"
	case RegionPredecessors:
		return "predecessors"
	default:
		return "none"
	}
}
