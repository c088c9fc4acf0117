package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/scafftools/scafferrors"
)

// parseFields splits text into exactly n space-delimited fields. The first
// n-1 spaces act as field separators; the final field keeps any remaining
// spaces, matching bounded-split behavior. The op name is carried into the
// error for template diagnostics.
func parseFields(op, text string, n int) ([]string, error) {
	fields := strings.SplitN(text, " ", n)
	if len(fields) < n {
		return nil, &scafferrors.ArgumentCountError{
			Op:       op,
			Expected: n,
			Actual:   len(fields),
			Raw:      text,
		}
	}
	return fields, nil
}

// parseSpan extracts a "start,end" index pair from a single field. The
// field splits at most once on a comma; a missing or empty end means
// "through the last segment". Non-numeric indices surface the strconv
// error unchanged.
func parseSpan(field string) (Span, error) {
	parts := strings.SplitN(field, ",", 2)

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return Span{}, fmt.Errorf("parsing span start: %w", err)
	}

	if len(parts) < 2 || parts[1] == "" {
		return Span{Start: start}, nil
	}

	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return Span{}, fmt.Errorf("parsing span end: %w", err)
	}
	return Span{Start: start, End: end, Bounded: true}, nil
}
