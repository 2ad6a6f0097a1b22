package types

import "time"

// ResolvedKind discriminates the two resolution shapes.
type ResolvedKind int

const (
	// ResolvedPoint is a single instant, e.g. "yesterday at 3pm".
	ResolvedPoint ResolvedKind = iota

	// ResolvedRange is an interval with inclusive start and exclusive end,
	// e.g. "today" (midnight to midnight) or "the last hour".
	ResolvedRange
)

// ResolvedTime is the concrete UTC time derived from a matched expression:
// either a point or a range. Use Kind to tell them apart; for a point only
// Start is meaningful.
type ResolvedTime struct {
	Kind  ResolvedKind
	Start time.Time
	End   time.Time
}

// NewPoint creates a point resolution.
func NewPoint(at time.Time) ResolvedTime {
	return ResolvedTime{Kind: ResolvedPoint, Start: at}
}

// NewRange creates a range resolution. Returns false if start is after end;
// resolvers must treat that as a decline rather than emit an invalid range.
func NewRange(start, end time.Time) (ResolvedTime, bool) {
	if start.After(end) {
		return ResolvedTime{}, false
	}
	return ResolvedTime{Kind: ResolvedRange, Start: start, End: end}, true
}

// IsRange reports whether the resolution is an interval.
func (r ResolvedTime) IsRange() bool {
	return r.Kind == ResolvedRange
}

// Equal compares two resolutions by instant equality (wall clock, not
// monotonic reading).
func (r ResolvedTime) Equal(other ResolvedTime) bool {
	if r.Kind != other.Kind {
		return false
	}
	if !r.Start.Equal(other.Start) {
		return false
	}
	if r.Kind == ResolvedRange && !r.End.Equal(other.End) {
		return false
	}
	return true
}
