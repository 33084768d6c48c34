package trace

import "fmt"

// ActionKind enumerates what happened to the running subsequence when one
// input element was processed.
type ActionKind int

const (
	// ActionInit is the state before any element has been processed. It is
	// always the action of step 0 and never appears afterwards.
	ActionInit ActionKind = iota
	// ActionAppend means the element extended the running subsequence.
	ActionAppend
	// ActionReplace means the element replaced the tail stored at a sequence
	// position, improving the smallest achievable tail for that length.
	ActionReplace
	// ActionSkip means the element left the state untouched: it was the
	// sentinel, or no better than its candidate insertion point.
	ActionSkip
)

// Action is a tagged variant describing a single algorithm step. Position is
// meaningful only for ActionReplace; Index is meaningful for every kind
// except ActionInit.
type Action struct {
	Kind     ActionKind
	Position int
	Index    int
}

func InitAction() Action {
	return Action{Kind: ActionInit, Position: -1, Index: -1}
}

func AppendAction(index int) Action {
	return Action{Kind: ActionAppend, Position: -1, Index: index}
}

func ReplaceAction(position, index int) Action {
	return Action{Kind: ActionReplace, Position: position, Index: index}
}

func SkipAction(index int) Action {
	return Action{Kind: ActionSkip, Position: -1, Index: index}
}

// String renders the action for logs and the step description line.
func (a Action) String() string {
	switch a.Kind {
	case ActionInit:
		return "init"
	case ActionAppend:
		return fmt.Sprintf("append input[%d]", a.Index)
	case ActionReplace:
		return fmt.Sprintf("replace sequence[%d] with input[%d]", a.Position, a.Index)
	case ActionSkip:
		return fmt.Sprintf("skip input[%d]", a.Index)
	}
	return fmt.Sprintf("unknown action %d", int(a.Kind))
}
