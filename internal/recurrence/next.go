package recurrence

import (
	"time"

	"recurring-task-engine/pkg/datemath"
)

// NextOccurrence returns the first date after from on which r fires. It
// returns false when that date lies after the rule's end date. The result is
// midnight in from's location; the clock part of from is ignored.
func NextOccurrence(r Rule, from time.Time) (time.Time, bool) {
	if r.IsZero() {
		return time.Time{}, false
	}
	day := datemath.StartOfDay(from)
	n := r.interval

	var next time.Time
	switch p := r.pattern.(type) {
	case Daily:
		next = day.AddDate(0, 0, n)
	case Weekly:
		next = nextWeekly(p.Days, n, day)
	case Monthly:
		dom := p.Day
		if dom == 0 {
			dom = day.Day()
		}
		next = datemath.DateIn(day.Year(), day.Month()+time.Month(n), dom, day.Location())
	case Yearly:
		next = datemath.DateIn(day.Year()+n, day.Month(), day.Day(), day.Location())
	default:
		return time.Time{}, false
	}

	if end, ok := r.EndDate(); ok && datemath.CompareDate(next, end) > 0 {
		return time.Time{}, false
	}
	return next, true
}

// nextWeekly steps within the Sunday-started week of day first, then jumps
// interval weeks ahead to the earliest selected weekday.
func nextWeekly(days WeekdaySet, interval int, day time.Time) time.Time {
	if days.Empty() {
		return day.AddDate(0, 0, 7*interval)
	}
	wd := day.Weekday()
	if later, ok := days.after(wd); ok {
		return day.AddDate(0, 0, int(later-wd))
	}
	first, _ := days.first()
	weekStart := day.AddDate(0, 0, -int(wd)+7*interval)
	return weekStart.AddDate(0, 0, int(first))
}

// Occurrences returns up to n successive occurrences after from, stopping
// early when the series ends.
func Occurrences(r Rule, from time.Time, n int) []time.Time {
	out := make([]time.Time, 0, max(n, 0))
	cur := from
	for len(out) < n {
		next, ok := NextOccurrence(r, cur)
		if !ok {
			break
		}
		out = append(out, next)
		cur = next
	}
	return out
}
