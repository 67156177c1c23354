package engine

import "time"

// Window is the closed interval [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Days is the window length in calendar days of Start's location, never less than one.
// A trailing part day counts as a whole day. Dates are compared on the wall clock, so a
// daylight-saving shift inside the window does not change the count.
func (w Window) Days() int {
	start := w.Start
	end := w.End.In(start.Location())
	d := civilDayNumber(end) - civilDayNumber(start)
	if clockOffset(end) > clockOffset(start) {
		d++
	}
	if d < 1 {
		return 1
	}
	return d
}

// civilDayNumber maps t's wall-clock date onto a day count that ignores zone offsets.
func civilDayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// clockOffset is t's wall-clock time of day.
func clockOffset(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// TrailingDays returns [asOf - n days, asOf].
func TrailingDays(asOf time.Time, n int) Window {
	return Window{Start: asOf.AddDate(0, 0, -n), End: asOf}
}

// TrailingMonths returns [asOf - n calendar months, asOf].
func TrailingMonths(asOf time.Time, n int) Window {
	return Window{Start: asOf.AddDate(0, -n, 0), End: asOf}
}

// MonthToDate returns [first instant of asOf's month, asOf].
func MonthToDate(asOf time.Time) Window {
	return Window{Start: startOfMonth(asOf), End: asOf}
}

// Today returns the calendar day containing asOf.
func Today(asOf time.Time) Window {
	start := startOfDay(asOf)
	return Window{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Sunday starting t's week.
func startOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func daysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// elapsedDaysInMonth counts the started days of asOf's month, at least one.
func elapsedDaysInMonth(asOf time.Time) int {
	return MonthToDate(asOf).Days()
}
