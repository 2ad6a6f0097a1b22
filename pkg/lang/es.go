package lang

import (
	"strings"
	"time"

	"github.com/hg8496/clockwords/pkg/resolve"
	"github.com/hg8496/clockwords/pkg/types"
)

const (
	esNumPattern     = `(?:\d+|un|uno|una|dos|tres|cuatro|cinco|seis|siete|ocho|nueve|diez|once|doce|trece|catorce|quince|veinte|treinta)`
	esWeekdayPattern = `lunes|martes|mi[ée]rcoles|jueves|viernes|s[áa]bado|domingo`
	esDayPattern     = `hoy|ma[ñn]ana|ayer`
)

type spanish struct {
	lex   *lexicon
	rules []Rule
}

// Spanish builds the Spanish language module.
func Spanish() (Language, error) {
	lex, err := loadLexicon("es")
	if err != nil {
		return nil, err
	}
	return &spanish{lex: lex, rules: spanishRules()}, nil
}

func (l *spanish) Code() string       { return "es" }
func (l *spanish) Keywords() []string { return l.lex.Keywords }
func (l *spanish) Prefixes() []string { return l.lex.Prefixes }
func (l *spanish) Rules() []Rule      { return l.rules }

func esDayOffset(s string) (int, bool) {
	switch strings.ToLower(s) {
	case "hoy":
		return 0, true
	case "mañana", "manana":
		return 1, true
	case "ayer":
		return -1, true
	default:
		return 0, false
	}
}

func esWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "lunes":
		return time.Monday, true
	case "martes":
		return time.Tuesday, true
	case "miércoles", "miercoles":
		return time.Wednesday, true
	case "jueves":
		return time.Thursday, true
	case "viernes":
		return time.Friday, true
	case "sábado", "sabado":
		return time.Saturday, true
	case "domingo":
		return time.Sunday, true
	default:
		return 0, false
	}
}

func esDayCapture(c Captures, now time.Time) (time.Time, bool) {
	day, ok := c.Group("day")
	if !ok {
		return time.Time{}, false
	}
	offset, ok := esDayOffset(day)
	if !ok {
		return time.Time{}, false
	}
	return resolve.DayStart(now, offset)
}

func esWeekdayResolver(direction int) Resolver {
	return func(c Captures, now time.Time) (types.ResolvedTime, bool) {
		wdStr, ok := c.Group("wd")
		if !ok {
			return types.ResolvedTime{}, false
		}
		weekday, ok := esWeekday(wdStr)
		if !ok {
			return types.ResolvedTime{}, false
		}
		return resolve.WeekdayRange(weekday, direction, now)
	}
}

func spanishRules() []Rule {
	num := esNumPattern
	wd := esWeekdayPattern
	day := esDayPattern

	return []Rule{
		// Combined: "ayer a las 3".
		{
			Pattern: mustCompile(`(?i)\b(?P<day>` + day + `)\s+a\s+las\s+(?P<hour>\d{1,2})\b`),
			Kind:    types.Combined,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				date, ok := esDayCapture(c, now)
				if !ok {
					return types.ResolvedTime{}, false
				}
				hour, ok := capInt(c, "hour")
				if !ok || hour > 23 {
					return types.ResolvedTime{}, false
				}
				return resolve.TimeOnDate(date, hour, 0)
			},
		},
		// Combined: "ayer entre las 9 y las 12".
		{
			Pattern: mustCompile(`(?i)\b(?P<day>` + day + `)\s+entre\s+las\s+(?P<from>\d{1,2})\s+y\s+las\s+(?P<to>\d{1,2})\b`),
			Kind:    types.Combined,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				date, ok := esDayCapture(c, now)
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
				offset, ok := esDayOffset(dayStr)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(offset, now)
			},
		},
		// Day offset backward: "hace 2 días", "hace dos dias".
		{
			Pattern: mustCompile(`(?i)\bhace\s+(?P<num>` + num + `)\s+d[ií]as?\b`),
			Kind:    types.RelativeDayOffset,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				n, ok := capNumber(c, "num", numbersES)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(-n, now)
			},
		},
		// Day offset forward: "en 3 días".
		{
			Pattern: mustCompile(`(?i)\ben\s+(?P<num>` + num + `)\s+d[ií]as?\b`),
			Kind:    types.RelativeDayOffset,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				n, ok := capNumber(c, "num", numbersES)
				if !ok {
					return types.ResolvedTime{}, false
				}
				return resolve.RelativeDay(n, now)
			},
		},
		// Time spec: "a las 3".
		{
			Pattern: mustCompile(`(?i)\ba\s+las\s+(?P<hour>\d{1,2})\b`),
			Kind:    types.TimeSpecification,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				hour, ok := capInt(c, "hour")
				if !ok || hour > 23 {
					return types.ResolvedTime{}, false
				}
				return resolve.TimeOfDay(hour, 0, now)
			},
		},
		// Time range: "(la) última hora/minuto".
		{
			Pattern: mustCompile(`(?i)\b(?:la\s+)?[úu]ltima\s+(?P<unit>hora|minuto)\b`),
			Kind:    types.TimeRange,
			Resolve: func(c Captures, now time.Time) (types.ResolvedTime, bool) {
				unit, ok := c.Group("unit")
				if !ok {
					return types.ResolvedTime{}, false
				}
				switch strings.ToLower(unit) {
				case "hora":
					return lastUnit("hour", now)
				case "minuto":
					return lastUnit("minute", now)
				default:
					return types.ResolvedTime{}, false
				}
			},
		},
		// Time range: "entre las 9 y las 12".
		{
			Pattern: mustCompile(`(?i)\bentre\s+las\s+(?P<from>\d{1,2})\s+y\s+las\s+(?P<to>\d{1,2})\b`),
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
		// Relative weekday: "el próximo viernes".
		{
			Pattern: mustCompile(`(?i)\b(?:el\s+)?pr[óo]ximo\s+(?P<wd>` + wd + `)\b`),
			Kind:    types.RelativeDay,
			Resolve: esWeekdayResolver(1),
		},
		// Relative weekday: "el viernes que viene".
		{
			Pattern: mustCompile(`(?i)\b(?:el\s+)?(?P<wd>` + wd + `)\s+que\s+viene\b`),
			Kind:    types.RelativeDay,
			Resolve: esWeekdayResolver(1),
		},
		// Relative weekday: "el viernes pasado".
		{
			Pattern: mustCompile(`(?i)\b(?:el\s+)?(?P<wd>` + wd + `)\s+pasado\b`),
			Kind:    types.RelativeDay,
			Resolve: esWeekdayResolver(-1),
		},
		// Relative weekday, current week: "este viernes".
		{
			Pattern: mustCompile(`(?i)\beste\s+(?P<wd>` + wd + `)\b`),
			Kind:    types.RelativeDay,
			Resolve: esWeekdayResolver(0),
		},
	}
}
