package render

import "strings"

// Span is a zero-based, end-exclusive segment index pair. Negative indices
// count from the end of the sequence. An unbounded span (Bounded false)
// extends through the last segment.
type Span struct {
	Start   int
	End     int
	Bounded bool
}

// bounds normalizes the span against a sequence of length n, returning
// clamped [lo, hi) indices. An inconsistent pair (start beyond end after
// normalization) collapses to an empty range rather than failing.
func (s Span) bounds(n int) (lo, hi int) {
	lo = normalizeIndex(s.Start, n)
	hi = n
	if s.Bounded {
		hi = normalizeIndex(s.End, n)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// normalizeIndex maps a possibly-negative slice index into [0, n].
func normalizeIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// SliceSegments splits text on delim, keeps the sub-sequence selected by
// span, and rejoins the remainder with the same delimiter. Out-of-range
// spans yield an empty string, never an error; an empty input is a single
// empty segment.
func SliceSegments(text, delim string, span Span) string {
	segs := strings.Split(text, delim)
	lo, hi := span.bounds(len(segs))
	return strings.Join(segs[lo:hi], delim)
}

// RejoinSegments is SliceSegments with a different output delimiter: it
// splits text on oldDelim, keeps the sub-sequence selected by span, and
// rejoins with newDelim. This lets one operation change both which
// segments are kept and the separator used, avoiding a second nested call.
func RejoinSegments(text, oldDelim, newDelim string, span Span) string {
	segs := strings.Split(text, oldDelim)
	lo, hi := span.bounds(len(segs))
	return strings.Join(segs[lo:hi], newDelim)
}
