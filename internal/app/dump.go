package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jiangshengdev/lis-explorer/internal/format/table"
	"github.com/jiangshengdev/lis-explorer/internal/parse"
	"github.com/jiangshengdev/lis-explorer/internal/trace"
)

// Dump writes the complete step table and the final result to w. It is the
// non-interactive twin of the viewer, useful for piping a trace into other
// tools or eyeballing a regression.
func Dump(w io.Writer, tr *trace.Trace) error {
	if _, err := fmt.Fprintf(w, "input: %s\n\n", parse.Format(tr.Input)); err != nil {
		return err
	}
	rows := make([][]string, 0, len(tr.Steps))
	for _, step := range tr.Steps {
		rows = append(rows, []string{
			strconv.Itoa(step.StepIndex),
			dumpValue(step),
			step.Action.String(),
			joinInts(step.Sequence),
			joinInts(step.Predecessors),
		})
	}
	lines := table.FormatWithHeader(
		[]string{"step", "value", "action", "sequence", "predecessors"},
		rows,
		[]table.Alignment{table.AlignRight, table.AlignRight, table.AlignLeft, table.AlignLeft, table.AlignLeft},
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	indices := make([]string, len(tr.Result))
	values := make([]string, len(tr.Result))
	for i, idx := range tr.Result {
		indices[i] = strconv.Itoa(idx)
		values[i] = strconv.Itoa(tr.Input[idx])
	}
	_, err := fmt.Fprintf(w, "\nresult: indices [%s] values [%s] (length %d)\n",
		strings.Join(indices, " "), strings.Join(values, " "), len(tr.Result))
	return err
}

func dumpValue(step trace.Snapshot) string {
	if step.CurrentIndex < 0 {
		return "-"
	}
	if step.CurrentValue == trace.Sentinel {
		return "·"
	}
	return strconv.Itoa(step.CurrentValue)
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "[]"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
