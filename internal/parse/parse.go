// Package parse validates user-entered number sequences before they reach the
// trace engine. It owns the deduplication precondition: the engine assumes no
// duplicate non-sentinel values, so repeated values are replaced with the
// sentinel here, at the boundary.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jiangshengdev/lis-explorer/internal/trace"
)

// Sequence parses a comma- or space-separated list of integers. Every element
// must be a non-negative integer or the literal -1 placeholder; fractional
// values, other negatives, and non-numeric tokens are rejected with the token
// position in the message so the UI can show the error inline. The second and
// later occurrences of any repeated non-sentinel value are replaced with the
// sentinel. An empty input parses to an empty sequence.
func Sequence(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	values := make([]int, 0, len(fields))
	seen := make(map[int]struct{}, len(fields))
	for pos, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			if _, ferr := strconv.ParseFloat(field, 64); ferr == nil {
				return nil, fmt.Errorf("element %d: %q is not a whole number", pos+1, field)
			}
			return nil, fmt.Errorf("element %d: %q is not an integer", pos+1, field)
		}
		if v < 0 && v != trace.Sentinel {
			return nil, fmt.Errorf("element %d: %d is negative (only -1 is allowed, as a placeholder)", pos+1, v)
		}
		if v != trace.Sentinel {
			if _, dup := seen[v]; dup {
				v = trace.Sentinel
			} else {
				seen[v] = struct{}{}
			}
		}
		values = append(values, v)
	}
	return values, nil
}

// Format renders a sequence in the canonical comma-separated form used to
// seed the editor. Parsing the result yields the same sequence.
func Format(values []int) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
