package lang

import (
	"strings"
	"time"

	"github.com/hg8496/clockwords/pkg/resolve"
	"github.com/hg8496/clockwords/pkg/types"
)

const (
	enNumPattern     = `(?:\d+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty|thirty)`
	enWeekdayPattern = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
)

type english struct {
	lex   *lexicon
	rules []Rule
}

// English builds the English language module.
func English() (Language, error) {
	lex, err := loadLexicon("en")
	if err != nil {
		return nil, err
	}
	return &english{lex: lex, rules: englishRules()}, nil
}

func (l *english) Code() string       { return "en" }
func (l *english) Keywords() []string { return l.lex.Keywords }
func (l *english) Prefixes() []string { return l.lex.Prefixes }
func (l *english) Rules() []Rule      { return l.rules }

func enDayOffset(s string) (int, bool) {
	switch strings.ToLower(s) {
	case "today":
		return 0, true
	case "tomorrow":
		return 1, true
	case "yesterday":
		return -1, true
	default:
		return 0, false
	}
}

func enWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	case "sunday":
		return time.Sunday, true
	default:
		return 0, false
	}
}

func enDirection(s string) (int, bool) {
	switch strings.ToLower(s) {
	case "next":
		return 1, true
	case "last":
		return -1, true
	case "this":
		return 0, true
	default:
		return 0, false
	}
}

// enHour maps an hour plus its "am"/"pm"/"o'clock" suffix to 24-hour form.
func enHour(hour int, suffix string) (int, bool) {
	h := hour
	if !strings.HasPrefix(strings.ToLower(suffix), "o") {
		h = resolve.To24Hour(hour, suffix)
	}
	if h > 23 {
		return 0, false
	}
	return h, true
}

// enClockTime extracts hour (+optional ":MM") and meridiem captures.
func enClockTime(c Captures) (hour, minute int, ok bool) {
	raw, ok := capInt(c, "hour")
	if !ok {
		return 0, 0, false
	}
	suffix, ok := c.Group("ampm")
	if !ok {
		return 0, 0, false
	}
	h, ok := enHour(raw, suffix)
	if !ok {
		return 0, 0, false
	}
	return h, capMinute(c), true
}

// enHourPair extracts the "from"/"to" captures of a range expression.
func enHourPair(c Captures) (from, to int, ok bool) {
	from, ok = capNumber(c, "from", numbersEN)
	if !ok {
		return 0, 0, false
	}
	to, ok = capNumber(c, "to", numbersEN)
	if !ok {
		return 0, 0, false
	}
	return from, to, true
}

func englishRules() []Rule {
	num := enNumPattern
	wd := enWeekdayPattern

	return []Rule{
		// Combined: weekday + time spec. "last Friday at 3pm",
		// "next Monday at 13 o'clock".
		{
			Pattern: mustCompile(`(?i)\b(?P<dir>next|last|this)\s+(?P<wd>` + wd + `)\s+at\s+(?P<hour>\d{1,2})(?::(?P<min>\d{2}))?\s*(?P<ampm>am|pm|o'?clock)\b`),
			Kind:    types.Combined,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				dir, wd, ok := enWeekdayCaptures(c)
				if !ok {
					return types.ResolvedTime{}, false
				}
				h, m, ok := enClockTime(c)
				if !ok {
					return types.ResolvedTime{}, false
				}
				date, ok := resolve.WeekdayDate(wd, dir, now)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.TimeOnDate(date, h, m)
			},
		},
		// Combined: weekday + between range. "last Friday between 9 and 12".
		{
			Pattern: mustCompile(`(?i)\b(?P<dir>next|last|this)\s+(?P<wd>` + wd + `)\s+between\s+(?P<from>` + num + `)\s+and\s+(?P<to>` + num + `)\s*(?:o'?clock)?\b`),
			Kind:    types.Combined,
			Resolve: enWeekdayRangeResolver,
		},
		// Combined: weekday + from/to range. "next Monday from 9 to eleven".
		{
			Pattern: mustCompile(`(?i)\b(?P<dir>next|last|this)\s+(?P<wd>` + wd + `)\s+from\s+(?P<from>` + num + `)\s+to\s+(?P<to>` + num + `)\s*(?:o'?clock)?\b`),
			Kind:    types.Combined,
			Resolve: enWeekdayRangeResolver,
		},
		// Combined: relative day + time spec. "yesterday at 3pm".
		{
			Pattern: mustCompile(`(?i)\b(?P<day>today|tomorrow|yesterday)\s+at\s+(?P<hour>\d{1,2})(?::(?P<min>\d{2}))?\s*(?P<ampm>am|pm|o'?clock)\b`),
			Kind:    types.Combined,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				date, ok := enDayCapture(c, now)
				if !ok {
					return types.ResolvedTime{}, false
				}
				h, m, ok := enClockTime(c)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.TimeOnDate(date, h, m)
			},
		},
		// Combined: relative day + between range. "yesterday between 9 and 12".
		{
			Pattern: mustCompile(`(?i)\b(?P<day>today|tomorrow|yesterday)\s+between\s+(?P<from>` + num + `)\s+and\s+(?P<to>` + num + `)\s*(?:o'?clock)?\b`),
			Kind:    types.Combined,
			Resolve: enDayRangeResolver,
		},
		// Combined: relative day + from/to range. "tomorrow from 9 to 11".
		{
			Pattern: mustCompile(`(?i)\b(?P<day>today|tomorrow|yesterday)\s+from\s+(?P<from>` + num + `)\s+to\s+(?P<to>` + num + `)\s*(?:o'?clock)?\b`),
			Kind:    types.Combined,
			Resolve: enDayRangeResolver,
		},
		// Relative day keyword.
		{
			Pattern: mustCompile(`(?i)\b(?P<day>today|tomorrow|yesterday)\b`),
			Kind:    types.RelativeDay,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				day, ok := c.Group("day")
				if !ok {
					return types.ResolvedTime{}, false
				}
				offset, ok := enDayOffset(day)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(offset, now)
			},
		},
		// Day offset forward: "in 4 days", "in two days".
		{
			Pattern: mustCompile(`(?i)\bin\s+(?P<num>` + num + `)\s+days?\b`),
			Kind:    types.RelativeDayOffset,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				n, ok := capNumber(c, "num", numbersEN)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(n, now)
			},
		},
		// Day offset backward: "two days ago".
		{
			Pattern: mustCompile(`(?i)\b(?P<num>` + num + `)\s+days?\s+ago\b`),
			Kind:    types.RelativeDayOffset,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				n, ok := capNumber(c, "num", numbersEN)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(-n, now)
			},
		},
		// Time spec: "at 3pm", "13 o'clock", "at 3:30pm".
		{
			Pattern: mustCompile(`(?i)\b(?:at\s+)?(?P<hour>\d{1,2})(?::(?P<min>\d{2}))?\s*(?P<ampm>am|pm|o'?clock)\b`),
			Kind:    types.TimeSpecification,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				h, m, ok := enClockTime(c)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.TimeOfDay(h, m, now)
			},
		},
		// Time range: "(the) last hour/minute".
		{
			Pattern: mustCompile(`(?i)\b(?:the\s+)?last\s+(?P<unit>hour|minute)\b`),
			Kind:    types.TimeRange,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				unit, ok := c.Group("unit")
				if !ok {
					return types.ResolvedTime{}, false
				}
				return lastUnit(strings.ToLower(unit), now)
			},
		},
		// Time range: "between 9 and 12 (o'clock)".
		{
			Pattern: mustCompile(`(?i)\bbetween\s+(?P<from>` + num + `)\s+and\s+(?P<to>` + num + `)\s*(?:o'?clock)?\b`),
			Kind:    types.TimeRange,
			Resolve: enTodayRangeResolver,
		},
		// Time range: "from 9 to 12 (o'clock)".
		{
			Pattern: mustCompile(`(?i)\bfrom\s+(?P<from>` + num + `)\s+to\s+(?P<to>` + num + `)\s*(?:o'?clock)?\b`),
			Kind:    types.TimeRange,
			Resolve: enTodayRangeResolver,
		},
		// Relative weekday: "next Friday", "last Monday", "this Wednesday".
		{
			Pattern: mustCompile(`(?i)\b(?P<dir>next|last|this)\s+(?P<wd>` + wd + `)\b`),
			Kind:    types.RelativeDay,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				dir, wd, ok := enWeekdayCaptures(c)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.WeekdayRange(wd, dir, now)
			},
		},
	}
}

func enWeekdayCaptures(c Captures) (direction int, weekday time.Weekday, ok bool) {
	dirStr, ok := c.Group("dir")
	if !ok {
		return 0, 0, false
	}
	wdStr, ok := c.Group("wd")
	if !ok {
		return 0, 0, false
	}
	direction, ok = enDirection(dirStr)
	if !ok {
		return 0, 0, false
	}
	weekday, ok = enWeekday(wdStr)
	return direction, weekday, ok
}

func enDayCapture(c Captures, now time.Time) (time.Time, bool) {
	day, ok := c.Group("day")
	if !ok {
		return time.Time{}, false
	}
	offset, ok := enDayOffset(day)
	if !ok {
		return time.Time{}, false
	}
	return resolve.DayStart(now, offset)
}

func enWeekdayRangeResolver(c Captures, now time.Time) (types.ResolvedTime, bool) {
	dir, wd, ok := enWeekdayCaptures(c)
	if !ok {
		return types.ResolvedTime{}, false
	}
	from, to, ok := enHourPair(c)
	if !ok {
		return types.ResolvedTime{}, false
	}
	date, ok := resolve.WeekdayDate(wd, dir, now)
	if !ok {
		return types.ResolvedTime{}, false
	}
	return resolve.TimeRangeOnDate(date, from, to)
}

func enDayRangeResolver(c Captures, now time.Time) (types.ResolvedTime, bool) {
	date, ok := enDayCapture(c, now)
	if !ok {
		return types.ResolvedTime{}, false
	}
	from, to, ok := enHourPair(c)
	if !ok {
		return types.ResolvedTime{}, false
	}
	return resolve.TimeRangeOnDate(date, from, to)
}

func enTodayRangeResolver(c Captures, now time.Time) (types.ResolvedTime, bool) {
	from, to, ok := enHourPair(c)
	if !ok {
		return types.ResolvedTime{}, false
	}
	return resolve.TimeRange(from, to, now)
}

// lastUnit maps an already-lowercased unit word (English canonical form) to
// a trailing range ending at now. Other languages map their unit words to
// these before calling.
func lastUnit(unit string, now time.Time) (types.ResolvedTime, bool) {
	switch unit {
	case "hour":
		return resolve.LastDuration(time.Hour, now)
	case "minute":
		return resolve.LastDuration(time.Minute, now)
	default:
		return types.ResolvedTime{}, false
	}
}
