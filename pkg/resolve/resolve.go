// Package resolve implements the calendar arithmetic behind grammar rule
// resolvers. Every function is pure and returns an explicit ok flag instead
// of panicking: out-of-range hours, overflowing dates and inverted ranges
// all decline, which the caller turns into "no match reported".
package resolve

import (
	"strings"
	"time"

	"github.com/hg8496/clockwords/pkg/types"
)

// Dates outside this window decline. Keeps day-offset arithmetic inside the
// proleptic Gregorian range the rest of the pipeline assumes.
const (
	minYear = 1
	maxYear = 9999
)

// DayStart returns UTC midnight of the day offsetDays away from now.
// Returns false if the resulting date leaves the supported calendar range.
func DayStart(now time.Time, offsetDays int) (time.Time, bool) {
	d := now.UTC()
	t := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, offsetDays)
	if t.Year() < minYear || t.Year() > maxYear {
		return time.Time{}, false
	}
	return t, true
}

// RelativeDay resolves a signed day offset to a full-day range, midnight to
// midnight UTC: 0 = today, 1 = tomorrow, -1 = yesterday. Arbitrary offsets
// are accepted; any bound on the magnitude is a grammar-level concern.
func RelativeDay(offsetDays int, now time.Time) (types.ResolvedTime, bool) {
	start, ok := DayStart(now, offsetDays)
	if !ok {
		return types.ResolvedTime{}, false
	}
	end := start.AddDate(0, 0, 1)
	if end.Year() > maxYear {
		return types.ResolvedTime{}, false
	}
	return types.NewRange(start, end)
}

// TimeOnDate sets a time of day on the given date, returning a point.
// Declines on hour > 23 or minute > 59.
func TimeOnDate(date time.Time, hour, minute int) (types.ResolvedTime, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return types.ResolvedTime{}, false
	}
	d := date.UTC()
	return types.NewPoint(time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)), true
}

// TimeOfDay sets a time of day on the same date as now.
func TimeOfDay(hour, minute int, now time.Time) (types.ResolvedTime, bool) {
	return TimeOnDate(now, hour, minute)
}

// TimeRangeOnDate resolves "between from and to o'clock" on the given date.
// Declines on out-of-range hours and on to < from: there is no implicit
// midnight wraparound.
func TimeRangeOnDate(date time.Time, from, to int) (types.ResolvedTime, bool) {
	if from < 0 || from > 23 || to < 0 || to > 23 || to < from {
		return types.ResolvedTime{}, false
	}
	d := date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), from, 0, 0, 0, time.UTC)
	end := time.Date(d.Year(), d.Month(), d.Day(), to, 0, 0, 0, time.UTC)
	return types.NewRange(start, end)
}

// TimeRange resolves "between from and to" on the same date as now.
func TimeRange(from, to int, now time.Time) (types.ResolvedTime, bool) {
	return TimeRangeOnDate(now, from, to)
}

// LastDuration resolves "the last hour/minute" style expressions to the
// range [now-d, now). Declines on non-positive durations.
func LastDuration(d time.Duration, now time.Time) (types.ResolvedTime, bool) {
	if d <= 0 {
		return types.ResolvedTime{}, false
	}
	return types.NewRange(now.Add(-d), now)
}

// weekdayOffset computes the day offset from now to the requested weekday.
// direction: 1 = next week's occurrence, -1 = last week's, 0 = this week's
// (today or within the coming six days).
func weekdayOffset(target time.Weekday, direction int, now time.Time) (int, bool) {
	current := now.UTC().Weekday()
	offsetThis := (int(target) - int(current) + 7) % 7

	switch direction {
	case 1:
		return offsetThis + 7, true
	case -1:
		return offsetThis - 7, true
	case 0:
		return offsetThis, true
	default:
		return 0, false
	}
}

// WeekdayDate resolves a relative weekday to UTC midnight of that day,
// suitable for anchoring a combined day+time expression.
func WeekdayDate(target time.Weekday, direction int, now time.Time) (time.Time, bool) {
	offset, ok := weekdayOffset(target, direction, now)
	if !ok {
		return time.Time{}, false
	}
	return DayStart(now, offset)
}

// WeekdayRange resolves a relative weekday to a full-day range.
func WeekdayRange(target time.Weekday, direction int, now time.Time) (types.ResolvedTime, bool) {
	offset, ok := weekdayOffset(target, direction, now)
	if !ok {
		return types.ResolvedTime{}, false
	}
	return RelativeDay(offset, now)
}

// To24Hour converts a 12-hour clock reading to 24-hour:
// "pm" with hour < 12 adds 12, "am" with hour 12 is midnight, anything
// else passes through unchanged.
func To24Hour(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour < 12 {
			return hour + 12
		}
	case "am":
		if hour == 12 {
			return 0
		}
	}
	return hour
}
