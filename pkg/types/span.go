package types

// Span is a byte range [Start, End) - half-open interval into the scanned text.
// Offsets are bytes, not runes, so a span can slice the original input
// directly: text[span.Start:span.End].
type Span struct {
	Start int
	End   int
}

// NewSpan creates a span from inclusive start to exclusive end.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Overlaps reports whether s and other share at least one byte position.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Covers reports whether s fully contains other.
func (s Span) Covers(other Span) bool {
	return s.Start <= other.Start && s.End >= other.End
}
