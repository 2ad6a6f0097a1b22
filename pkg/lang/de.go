package lang

import (
	"strings"
	"time"

	"github.com/hg8496/clockwords/pkg/resolve"
	"github.com/hg8496/clockwords/pkg/types"
)

const (
	deNumPattern     = `(?:\d+|ein|eins|eine|einem|einen|zwei|drei|vier|f[uü]nf|funf|sechs|sieben|acht|neun|zehn|elf|zw[oö]lf)`
	deWeekdayPattern = `montag|dienstag|mittwoch|donnerstag|freitag|samstag|sonnabend|sonntag`
	deDirPattern     = `n(?:ä|ae|a)chsten|kommenden|letzten|vergangenen|diesen`
)

type german struct {
	lex   *lexicon
	rules []Rule
}

// German builds the German language module.
func German() (Language, error) {
	lex, err := loadLexicon("de")
	if err != nil {
		return nil, err
	}
	return &german{lex: lex, rules: germanRules()}, nil
}

func (l *german) Code() string       { return "de" }
func (l *german) Keywords() []string { return l.lex.Keywords }
func (l *german) Prefixes() []string { return l.lex.Prefixes }
func (l *german) Rules() []Rule      { return l.rules }

func deDayOffset(s string) (int, bool) {
	switch strings.ToLower(s) {
	case "heute":
		return 0, true
	case "morgen":
		return 1, true
	case "gestern":
		return -1, true
	default:
		return 0, false
	}
}

func deWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "montag":
		return time.Monday, true
	case "dienstag":
		return time.Tuesday, true
	case "mittwoch":
		return time.Wednesday, true
	case "donnerstag":
		return time.Thursday, true
	case "freitag":
		return time.Friday, true
	case "samstag", "sonnabend":
		return time.Saturday, true
	case "sonntag":
		return time.Sunday, true
	default:
		return 0, false
	}
}

func deDirection(s string) (int, bool) {
	switch strings.ToLower(s) {
	case "nächsten", "naechsten", "nachsten", "kommenden":
		return 1, true
	case "letzten", "vergangenen":
		return -1, true
	case "diesen":
		return 0, true
	default:
		return 0, false
	}
}

func deWeekdayCaptures(c Captures) (direction int, weekday time.Weekday, ok bool) {
	dirStr, ok := c.Group("dir")
	if !ok {
		return 0, 0, false
	}
	wdStr, ok := c.Group("wd")
	if !ok {
		return 0, 0, false
	}
	direction, ok = deDirection(dirStr)
	if !ok {
		return 0, 0, false
	}
	weekday, ok = deWeekday(wdStr)
	return direction, weekday, ok
}

func deDayCapture(c Captures, now time.Time) (time.Time, bool) {
	day, ok := c.Group("day")
	if !ok {
		return time.Time{}, false
	}
	offset, ok := deDayOffset(day)
	if !ok {
		return time.Time{}, false
	}
	return resolve.DayStart(now, offset)
}

func deHourPair(c Captures) (from, to int, ok bool) {
	from, ok = capNumber(c, "from", numbersDE)
	if !ok {
		return 0, 0, false
	}
	to, ok = capNumber(c, "to", numbersDE)
	if !ok {
		return 0, 0, false
	}
	return from, to, true
}

func germanRules() []Rule {
	num := deNumPattern
	wd := deWeekdayPattern
	dir := deDirPattern

	return []Rule{
		// Combined: weekday + "um X Uhr". "letzten Freitag um 15 Uhr".
		{
			Pattern: mustCompile(`(?i)\b(?:am\s+)?(?P<dir>` + dir + `)\s+(?P<wd>` + wd + `)\s+um\s+(?P<hour>\d{1,2})(?::(?P<min>\d{2}))?\s+Uhr\b`),
			Kind:    types.Combined,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				direction, weekday, ok := deWeekdayCaptures(c)
				if !ok {
					return types.ResolvedTime{}, false
				}
				hour, ok := capInt(c, "hour")
				if !ok || hour > 23 {
					return types.ResolvedTime{}, false
				}
				date, ok := resolve.WeekdayDate(weekday, direction, now)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.TimeOnDate(date, hour, capMinute(c))
			},
		},
		// Combined: weekday + "von X bis Y (Uhr)".
		{
			Pattern: mustCompile(`(?i)\b(?:am\s+)?(?P<dir>` + dir + `)\s+(?P<wd>` + wd + `)\s+von\s+(?P<from>\d{1,2})\s+bis\s+(?P<to>\d{1,2})(?:\s*Uhr)?\b`),
			Kind:    types.Combined,
			Resolve: deWeekdayRangeResolver,
		},
		// Combined: weekday + "zwischen X und Y (Uhr)".
		{
			Pattern: mustCompile(`(?i)\b(?:am\s+)?(?P<dir>` + dir + `)\s+(?P<wd>` + wd + `)\s+zwischen\s+(?P<from>\d{1,2})\s+und\s+(?P<to>\d{1,2})\s*(?:Uhr)?\b`),
			Kind:    types.Combined,
			Resolve: deWeekdayRangeResolver,
		},
		// Combined: "gestern um 15 Uhr", "heute um 15:30 Uhr".
		{
			Pattern: mustCompile(`(?i)\b(?P<day>heute|morgen|gestern)\s+um\s+(?P<hour>\d{1,2})(?::(?P<min>\d{2}))?\s+Uhr\b`),
			Kind:    types.Combined,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				date, ok := deDayCapture(c, now)
				if !ok {
					return types.ResolvedTime{}, false
				}
				hour, ok := capInt(c, "hour")
				if !ok || hour > 23 {
					return types.ResolvedTime{}, false
				}
				return resolve.TimeOnDate(date, hour, capMinute(c))
			},
		},
		// Combined: "gestern von 9 bis 12 Uhr".
		{
			Pattern: mustCompile(`(?i)\b(?P<day>heute|morgen|gestern)\s+von\s+(?P<from>\d{1,2})\s+bis\s+(?P<to>\d{1,2})\s*Uhr\b`),
			Kind:    types.Combined,
			Resolve: deDayRangeResolver,
		},
		// Combined: "gestern zwischen 9 und 12 (Uhr)".
		{
			Pattern: mustCompile(`(?i)\b(?P<day>heute|morgen|gestern)\s+zwischen\s+(?P<from>\d{1,2})\s+und\s+(?P<to>\d{1,2})\s*(?:Uhr)?\b`),
			Kind:    types.Combined,
			Resolve: deDayRangeResolver,
		},
		// Relative day keyword.
		{
			Pattern: mustCompile(`(?i)\b(?P<day>heute|morgen|gestern)\b`),
			Kind:    types.RelativeDay,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				day, ok := c.Group("day")
				if !ok {
					return types.ResolvedTime{}, false
				}
				offset, ok := deDayOffset(day)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(offset, now)
			},
		},
		// Day offset backward: "vor 3 Tagen", "vor zwei Tagen".
		{
			Pattern: mustCompile(`(?i)\bvor\s+(?P<num>` + num + `)\s+Tagen?\b`),
			Kind:    types.RelativeDayOffset,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				n, ok := capNumber(c, "num", numbersDE)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(-n, now)
			},
		},
		// Day offset forward: "in 3 Tagen".
		{
			Pattern: mustCompile(`(?i)\bin\s+(?P<num>` + num + `)\s+Tagen?\b`),
			Kind:    types.RelativeDayOffset,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				n, ok := capNumber(c, "num", numbersDE)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(n, now)
			},
		},
		// Time spec: "um 15 Uhr", "um 15:30 Uhr".
		{
			Pattern: mustCompile(`(?i)\bum\s+(?P<hour>\d{1,2})(?::(?P<min>\d{2}))?\s+Uhr\b`),
			Kind:    types.TimeSpecification,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				hour, ok := capInt(c, "hour")
				if !ok || hour > 23 {
					return types.ResolvedTime{}, false
				}
				return resolve.TimeOfDay(hour, capMinute(c), now)
			},
		},
		// Time range: "(die) letzte Stunde/Minute".
		{
			Pattern: mustCompile(`(?i)\b(?:die\s+)?letzte\s+(?P<unit>Stunde|Minute)\b`),
			Kind:    types.TimeRange,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				unit, ok := c.Group("unit")
				if !ok {
					return types.ResolvedTime{}, false
				}
				switch strings.ToLower(unit) {
				case "stunde":
					return lastUnit("hour", now)
				case "minute":
					return lastUnit("minute", now)
				default:
					return types.ResolvedTime{}, false
				}
			},
		},
		// Time range: "von 9 bis 12 Uhr".
		{
			Pattern: mustCompile(`(?i)\bvon\s+(?P<from>\d{1,2})\s+bis\s+(?P<to>\d{1,2})\s*Uhr\b`),
			Kind:    types.TimeRange,
			Resolve: deTodayRangeResolver,
		},
		// Time range: "zwischen 9 und 12 (Uhr)".
		{
			Pattern: mustCompile(`(?i)\bzwischen\s+(?P<from>\d{1,2})\s+und\s+(?P<to>\d{1,2})\s*(?:Uhr)?\b`),
			Kind:    types.TimeRange,
			Resolve: deTodayRangeResolver,
		},
		// Relative weekday: "nächsten Freitag", "am letzten Montag".
		{
			Pattern: mustCompile(`(?i)\b(?:am\s+)?(?P<dir>` + dir + `)\s+(?P<wd>` + wd + `)\b`),
			Kind:    types.RelativeDay,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				direction, weekday, ok := deWeekdayCaptures(c)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.WeekdayRange(weekday, direction, now)
			},
		},
	}
}

func deWeekdayRangeResolver(c Captures, now time.Time) (types.ResolvedTime, bool) {
	direction, weekday, ok := deWeekdayCaptures(c)
	if !ok {
		return types.ResolvedTime{}, false
	}
	from, to, ok := deHourPair(c)
	if !ok {
		return types.ResolvedTime{}, false
	}
	date, ok := resolve.WeekdayDate(weekday, direction, now)
	if !ok {
		return types.ResolvedTime{}, false
	}
	return resolve.TimeRangeOnDate(date, from, to)
}

func deDayRangeResolver(c Captures, now time.Time) (types.ResolvedTime, bool) {
	date, ok := deDayCapture(c, now)
	if !ok {
		return types.ResolvedTime{}, false
	}
	from, ok := capInt(c, "from")
	if !ok {
		return types.ResolvedTime{}, false
	}
	to, ok := capInt(c, "to")
	if !ok {
		return types.ResolvedTime{}, false
	}
	return resolve.TimeRangeOnDate(date, from, to)
}

func deTodayRangeResolver(c Captures, now time.Time) (types.ResolvedTime, bool) {
	from, ok := capInt(c, "from")
	if !ok {
		return types.ResolvedTime{}, false
	}
	to, ok := capInt(c, "to")
	if !ok {
		return types.ResolvedTime{}, false
	}
	return resolve.TimeRange(from, to, now)
}
