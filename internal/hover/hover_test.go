package hover

import (
	"reflect"
	"testing"

	"github.com/jiangshengdev/lis-explorer/internal/navigator"
	"github.com/jiangshengdev/lis-explorer/internal/trace"
)

type navSource struct {
	nav *navigator.Navigator
}

func (s navSource) CurrentStep() (trace.Snapshot, bool) {
	return s.nav.Current()
}

type emptySource struct{}

func (emptySource) CurrentStep() (trace.Snapshot, bool) {
	return trace.Snapshot{}, false
}

func TestEnterChainRecordsVerbatim(t *testing.T) {
	m := New()
	m.EnterChain([]int{1, 2, 4}, 2)
	if got := m.ChainIndexes(); !reflect.DeepEqual(got, []int{1, 2, 4}) {
		t.Fatalf("expected recorded chain [1 2 4], got %v", got)
	}
	info, ok := m.Chain()
	if !ok || info.Position != 2 {
		t.Fatalf("expected chain position 2, got %v ok=%v", info, ok)
	}
	m.LeaveChain()
	if len(m.ChainIndexes()) != 0 {
		t.Fatalf("expected empty chain after leave")
	}
	if _, ok := m.Chain(); ok {
		t.Fatalf("expected no chain info after leave")
	}
}

func TestRefreshNoOpWithoutHover(t *testing.T) {
	m := New()
	m.Refresh(emptySource{}) // must not panic or invent state
	if len(m.ChainIndexes()) != 0 {
		t.Fatalf("refresh without hover changed state")
	}
}

func TestRefreshTracksNavigator(t *testing.T) {
	tr := trace.Compute([]int{2, 1, 3, 0, 4})
	nav := navigator.New(tr)
	src := navSource{nav: nav}
	nav.GoToEnd()
	snap, _ := nav.Current()
	m := New()
	m.EnterChain(trace.Chain(snap, 1), 1)

	// Every move must leave the hovered chain equal to a fresh derivation
	// from the snapshot now shown.
	moves := []func(){
		func() { nav.Prev() },
		func() { nav.Prev() },
		func() { nav.GoTo(3) },
		func() { nav.Next() },
		func() { nav.GoToEnd() },
	}
	for i, move := range moves {
		move()
		m.Refresh(src)
		cur, _ := nav.Current()
		want := trace.Chain(cur, 1)
		got := m.ChainIndexes()
		if want == nil {
			if len(got) != 0 {
				t.Fatalf("move %d: expected cleared hover, got %v", i, got)
			}
			return
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("move %d: hovered chain %v, fresh derivation %v", i, got, want)
		}
	}
}

func TestRefreshClearsStalePosition(t *testing.T) {
	tr := trace.Compute([]int{2, 1, 3, 0, 4})
	nav := navigator.New(tr)
	src := navSource{nav: nav}
	nav.GoToEnd()
	snap, _ := nav.Current()
	m := New()
	m.EnterChain(trace.Chain(snap, 2), 2)

	// The init snapshot has an empty sequence; position 2 is out of range, so
	// the hover must degrade to cleared rather than show a stale chain.
	nav.Reset()
	m.Refresh(src)
	if len(m.ChainIndexes()) != 0 {
		t.Fatalf("expected cleared chain, got %v", m.ChainIndexes())
	}
	if _, ok := m.Chain(); ok {
		t.Fatalf("expected chain info cleared with the indexes")
	}
}

func TestRefreshClearsWhenNoSnapshot(t *testing.T) {
	m := New()
	m.EnterChain([]int{0}, 0)
	m.Refresh(emptySource{})
	if _, ok := m.Chain(); ok {
		t.Fatalf("expected hover cleared when no current snapshot exists")
	}
}

func TestRegionHoverToggles(t *testing.T) {
	m := New()
	m.EnterSequence()
	m.EnterPredecessors()
	if !m.SequenceHovered() || !m.PredecessorsHovered() {
		t.Fatalf("expected both regions hovered")
	}
	m.LeaveSequence()
	m.LeavePredecessors()
	if m.SequenceHovered() || m.PredecessorsHovered() {
		t.Fatalf("expected both regions cleared")
	}
}
