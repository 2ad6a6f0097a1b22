package types

// MatchConfidence indicates whether the scanner saw a complete time
// expression or just a prefix still being typed. The ordering
// Partial < Complete is used during deduplication.
type MatchConfidence int

const (
	// Partial means the text ends with a prefix of a known time keyword
	// (e.g. "yester" for "yesterday"). The resolved time of a partial match
	// is a best-effort placeholder and should not be used for time math.
	Partial MatchConfidence = iota

	// Complete means the expression fully matched a grammar rule and the
	// resolved time is meaningful.
	Complete
)

func (c MatchConfidence) String() string {
	if c == Complete {
		return "complete"
	}
	return "partial"
}

// ExpressionKind is the closed set of expression categories a grammar rule
// can produce. It is assigned by the rule that matched and never
// reinterpreted downstream.
type ExpressionKind int

const (
	// RelativeDay is a bare relative day keyword: "today", "gestern",
	// "demain", "ayer". Resolves to a full-day range.
	RelativeDay ExpressionKind = iota

	// RelativeDayOffset carries a numeric day offset: "in 4 days",
	// "vor 3 Tagen", "hace 2 días". Resolves to a full-day range.
	RelativeDayOffset

	// TimeSpecification is a time of day: "at 3pm", "um 15 Uhr", "à 13h".
	// Resolves to a point.
	TimeSpecification

	// TimeRange is an interval expression: "the last hour",
	// "between 9 and 12", "von 9 bis 12 Uhr". Resolves to a range.
	TimeRange

	// Combined pairs a day component with a time component:
	// "yesterday at 3pm", "gestern von 9 bis 12 Uhr".
	Combined
)

func (k ExpressionKind) String() string {
	switch k {
	case RelativeDay:
		return "relative-day"
	case RelativeDayOffset:
		return "relative-day-offset"
	case TimeSpecification:
		return "time-specification"
	case TimeRange:
		return "time-range"
	case Combined:
		return "combined"
	default:
		return "unknown"
	}
}

// TimeMatch is a single scan result: where the expression was found, what
// kind it is, how confident the scanner is, and what it resolved to.
// Matches are produced fresh per scan and never mutated afterwards.
type TimeMatch struct {
	Span       Span
	Kind       ExpressionKind
	Confidence MatchConfidence
	Resolved   ResolvedTime
}
