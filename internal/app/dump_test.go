package app

import (
	"strings"
	"testing"

	"github.com/jiangshengdev/lis-explorer/internal/trace"
)

func TestDumpIncludesEveryStep(t *testing.T) {
	tr := trace.Compute([]int{2, 1, 3})
	var b strings.Builder
	if err := Dump(&b, tr); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"input: 2,1,3",
		"init",
		"append input[0]",
		"replace sequence[0] with input[1]",
		"append input[2]",
		"result: indices [1 2] values [1 3] (length 2)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpEmptyTrace(t *testing.T) {
	var b strings.Builder
	if err := Dump(&b, trace.Compute(nil)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !strings.Contains(b.String(), "result: indices [] values [] (length 0)") {
		t.Fatalf("expected empty result line:\n%s", b.String())
	}
}
