// Package dateutil provides the pure date functions behind the calendar:
// named display formats, range math, grid generation, and relative-time
// phrasing. All functions are stateless; callers pass the reference time in
// where "now" matters.
package dateutil

import (
	"fmt"
	"time"
)

// Format names a display format understood by FormatDate.
type Format string

const (
	FormatShort     Format = "short"      // Jan 2, 2006
	FormatLong      Format = "long"       // Monday, January 2, 2006
	FormatTime      Format = "time"       // 3:04 PM
	FormatDateTime  Format = "datetime"   // Jan 2, 2006 3:04 PM
	FormatDayMonth  Format = "day-month"  // Jan 2
	FormatWeekday   Format = "weekday"    // Monday
	FormatMonthYear Format = "month-year" // January 2006
	FormatISO       Format = "iso"        // RFC 3339
	FormatInput     Format = "input"      // 2006-01-02T15:04, for datetime-local inputs
)

var layouts = map[Format]string{
	FormatShort:     "Jan 2, 2006",
	FormatLong:      "Monday, January 2, 2006",
	FormatTime:      "3:04 PM",
	FormatDateTime:  "Jan 2, 2006 3:04 PM",
	FormatDayMonth:  "Jan 2",
	FormatWeekday:   "Monday",
	FormatMonthYear: "January 2006",
	FormatISO:       time.RFC3339,
	FormatInput:     "2006-01-02T15:04",
}

// FormatDate renders t in the named format. The zero time and unknown
// formats render as the empty string rather than a panic or a raw error.
func FormatDate(t time.Time, f Format) string {
	if t.IsZero() {
		return ""
	}
	layout, ok := layouts[f]
	if !ok {
		return ""
	}
	return t.Format(layout)
}

// parseLayouts are tried in order by Parse. Inputs come from RFC 3339 API
// payloads, datetime-local form fields, and bare dates.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse converts s into a time.Time in the local zone, reporting failure
// with ok=false instead of an error value.
func Parse(s string) (time.Time, bool) {
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// InRange reports whether t falls within [start, end], bounds inclusive.
func InRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths returns t shifted by n calendar months.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// StartOfDay returns midnight at the start of t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight on the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return AddDays(StartOfDay(t), -int(t.Weekday()))
}

// EndOfWeek returns the last nanosecond of the Saturday on or after t.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight on the first of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same month of the same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysBetween returns the number of whole calendar days from a to b
// (negative when b is before a).
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)).Hours() / 24)
}

// HoursBetween returns the number of whole hours from a to b.
func HoursBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours())
}

// IsLeapYear reports whether year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// FormatDuration renders a minute count as "Xh Ym", dropping zero parts
// ("3h", "45m"). Non-positive durations render as "0m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// RelativeTo phrases t relative to now for display next to upcoming events:
// "Now" within a minute, minutes and hours within the day, "Tomorrow", the
// weekday name within a week, then weeks. Past times fall back to the short
// date format since the widget only phrases upcoming events.
func RelativeTo(now, t time.Time) string {
	d := t.Sub(now)
	if d > -time.Minute && d < time.Minute {
		return "Now"
	}
	if d < 0 {
		return FormatDate(t, FormatShort)
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "In 1 minute"
		}
		return fmt.Sprintf("In %d minutes", mins)
	}
	days := DaysBetween(now, t)
	switch {
	case days == 0:
		hours := int(d.Hours())
		if hours == 1 {
			return "In 1 hour"
		}
		return fmt.Sprintf("In %d hours", hours)
	case days == 1:
		return "Tomorrow"
	case days < 7:
		return FormatDate(t, FormatWeekday)
	default:
		weeks := days / 7
		if weeks == 1 {
			return "In 1 week"
		}
		return fmt.Sprintf("In %d weeks", weeks)
	}
}
