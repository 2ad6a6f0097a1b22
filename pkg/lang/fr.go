package lang

import (
	"strings"
	"time"

	"github.com/hg8496/clockwords/pkg/resolve"
	"github.com/hg8496/clockwords/pkg/types"
)

const (
	frNumPattern     = `(?:\d+|un|une|deux|trois|quatre|cinq|six|sept|huit|neuf|dix|onze|douze|treize|quatorze|quinze|seize|vingt|trente)`
	frWeekdayPattern = `lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche`
	frDayPattern     = `aujourd['’]hui|demain|hier`
)

type french struct {
	lex   *lexicon
	rules []Rule
}

// French builds the French language module.
func French() (Language, error) {
	lex, err := loadLexicon("fr")
	if err != nil {
		return nil, err
	}
	return &french{lex: lex, rules: frenchRules()}, nil
}

func (l *french) Code() string       { return "fr" }
func (l *french) Keywords() []string { return l.lex.Keywords }
func (l *french) Prefixes() []string { return l.lex.Prefixes }
func (l *french) Rules() []Rule      { return l.rules }

func frDayOffset(s string) (int, bool) {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "aujourd"):
		return 0, true
	case lower == "demain":
		return 1, true
	case lower == "hier":
		return -1, true
	default:
		return 0, false
	}
}

func frWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "lundi":
		return time.Monday, true
	case "mardi":
		return time.Tuesday, true
	case "mercredi":
		return time.Wednesday, true
	case "jeudi":
		return time.Thursday, true
	case "vendredi":
		return time.Friday, true
	case "samedi":
		return time.Saturday, true
	case "dimanche":
		return time.Sunday, true
	default:
		return 0, false
	}
}

// The direction word follows the weekday in French: "vendredi prochain".
func frDirection(s string) (int, bool) {
	switch strings.ToLower(s) {
	case "prochain":
		return 1, true
	case "dernier":
		return -1, true
	default:
		return 0, false
	}
}

func frDayCapture(c Captures, now time.Time) (time.Time, bool) {
	day, ok := c.Group("day")
	if !ok {
		return time.Time{}, false
	}
	offset, ok := frDayOffset(day)
	if !ok {
		return time.Time{}, false
	}
	return resolve.DayStart(now, offset)
}

func frenchRules() []Rule {
	num := frNumPattern
	wd := frWeekdayPattern
	day := frDayPattern

	return []Rule{
		// Combined: "hier à 13h", "demain à 13h30".
		{
			Pattern: mustCompile(`(?i)\b(?P<day>` + day + `)\s+[àa]\s+(?P<hour>\d{1,2})\s*h(?P<min>\d{2})?\b`),
			Kind:    types.Combined,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				date, ok := frDayCapture(c, now)
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
		// Combined: "hier entre 9 et 12 heures".
		{
			Pattern: mustCompile(`(?i)\b(?P<day>` + day + `)\s+entre\s+(?P<from>\d{1,2})\s+et\s+(?P<to>\d{1,2})\s*(?:heures?)?\b`),
			Kind:    types.Combined,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				date, ok := frDayCapture(c, now)
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
			},
		},
		// Relative day keyword.
		{
			Pattern: mustCompile(`(?i)\b(?P<day>` + day + `)\b`),
			Kind:    types.RelativeDay,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				dayStr, ok := c.Group("day")
				if !ok {
					return types.ResolvedTime{}, false
				}
				offset, ok := frDayOffset(dayStr)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(offset, now)
			},
		},
		// Day offset backward: "il y a 3 jours", "il y a deux jours".
		{
			Pattern: mustCompile(`(?i)\bil\s+y\s+a\s+(?P<num>` + num + `)\s+jours?\b`),
			Kind:    types.RelativeDayOffset,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				n, ok := capNumber(c, "num", numbersFR)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(-n, now)
			},
		},
		// Day offset forward: "dans 3 jours".
		{
			Pattern: mustCompile(`(?i)\bdans\s+(?P<num>` + num + `)\s+jours?\b`),
			Kind:    types.RelativeDayOffset,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				n, ok := capNumber(c, "num", numbersFR)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(n, now)
			},
		},
		// Time spec: "à 13h", "à 13h30".
		{
			Pattern: mustCompile(`(?i)(?:^|\b)[àa]\s+(?P<hour>\d{1,2})\s*h(?P<min>\d{2})?\b`),
			Kind:    types.TimeSpecification,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				hour, ok := capInt(c, "hour")
				if !ok || hour > 23 {
					return types.ResolvedTime{}, false
				}
				return resolve.TimeOfDay(hour, capMinute(c), now)
			},
		},
		// Time range: "(la) dernière heure/minute".
		{
			Pattern: mustCompile(`(?i)\b(?:la\s+)?derni[èe]re\s+(?P<unit>heure|minute)\b`),
			Kind:    types.TimeRange,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				unit, ok := c.Group("unit")
				if !ok {
					return types.ResolvedTime{}, false
				}
				switch strings.ToLower(unit) {
				case "heure":
					return lastUnit("hour", now)
				case "minute":
					return lastUnit("minute", now)
				default:
					return types.ResolvedTime{}, false
				}
			},
		},
		// Time range: "entre 9 et 12 heures".
		{
			Pattern: mustCompile(`(?i)\bentre\s+(?P<from>\d{1,2})\s+et\s+(?P<to>\d{1,2})\s*(?:heures?)?\b`),
			Kind:    types.TimeRange,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				from, ok := capInt(c, "from")
				if !ok {
					return types.ResolvedTime{}, false
				}
				to, ok := capInt(c, "to")
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.TimeRange(from, to, now)
			},
		},
		// Relative weekday, postfix direction: "vendredi prochain", "lundi dernier".
		{
			Pattern: mustCompile(`(?i)\b(?P<wd>` + wd + `)\s+(?P<dir>prochain|dernier)\b`),
			Kind:    types.RelativeDay,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				wdStr, ok := c.Group("wd")
				if !ok {
					return types.ResolvedTime{}, false
				}
				dirStr, ok := c.Group("dir")
				if !ok {
					return types.ResolvedTime{}, false
				}
				weekday, ok := frWeekday(wdStr)
				if !ok {
					return types.ResolvedTime{}, false
				}
				direction, ok := frDirection(dirStr)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.WeekdayRange(weekday, direction, now)
			},
		},
		// Relative weekday, current week: "ce vendredi".
		{
			Pattern: mustCompile(`(?i)\bce\s+(?P<wd>` + wd + `)\b`),
			Kind:    types.RelativeDay,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				wdStr, ok := c.Group("wd")
				if !ok {
					return types.ResolvedTime{}, false
				}
				weekday, ok := frWeekday(wdStr)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.WeekdayRange(weekday, 0, now)
			},
		},
	}
}
