package datemath

import (
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "weds": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// LookupWeekday resolves a full or abbreviated English weekday name.
func LookupWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")]
	return wd, ok
}

// LookupMonth resolves a full or abbreviated English month name.
func LookupMonth(name string) (time.Month, bool) {
	m, ok := monthNames[strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")]
	return m, ok
}

// StartOfDay returns midnight of t's calendar day in t's own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in month m of year y.
func DaysInMonth(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateIn builds midnight of y-m-d in loc, clamping day to the month's last day.
func DateIn(y int, m time.Month, day int, loc *time.Location) time.Time {
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, loc)
}

// AddMonthsClamped moves t by n months keeping its day of month where possible.
// Unlike time.AddDate, Jan 31 + 1 month is Feb 28/29, not Mar 2/3.
func AddMonthsClamped(t time.Time, n int) time.Time {
	return DateIn(t.Year(), t.Month()+time.Month(n), t.Day(), t.Location())
}

// DaysUntil returns how many days ahead target falls from wd, in 1..7.
func DaysUntil(wd, target time.Weekday) int {
	d := (int(target) - int(wd) + 7) % 7
	if d == 0 {
		d = 7
	}
	return d
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return CompareDate(a, b) == 0
}

// CompareDate compares the calendar dates of a and b, ignoring clock and location.
func CompareDate(a, b time.Time) int {
	ka := a.Year()*10000 + int(a.Month())*100 + a.Day()
	kb := b.Year()*10000 + int(b.Month())*100 + b.Day()
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}
