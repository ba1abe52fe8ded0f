package recurrence

import (
	"fmt"
	"strings"
)

// Label renders r as a short human-readable sentence, e.g.
// "Repeats every Mon, Wed, Fri" or "Repeats every 2 months on the 14th".
func (r Rule) Label() string {
	if r.IsZero() {
		return ""
	}
	var b strings.Builder
	b.WriteString("Repeats every ")

	n := r.interval
	switch p := r.pattern.(type) {
	case Daily:
		b.WriteString(unit(n, "day"))
	case Weekly:
		switch {
		case n == 1 && p.Days.Empty():
			b.WriteString("week")
		case n == 1:
			b.WriteString(weekdayPhrase(p.Days))
		case p.Days.Empty():
			b.WriteString(unit(n, "week"))
		case p.Days == Weekdays:
			fmt.Fprintf(&b, "%s on weekdays", unit(n, "week"))
		default:
			fmt.Fprintf(&b, "%s on %s", unit(n, "week"), weekdayPhrase(p.Days))
		}
	case Monthly:
		b.WriteString(unit(n, "month"))
		if p.Day > 0 {
			fmt.Fprintf(&b, " on the %s", ordinal(p.Day))
		}
	case Yearly:
		b.WriteString(unit(n, "year"))
	}

	if end, ok := r.EndDate(); ok {
		b.WriteString(" until ")
		b.WriteString(end.Format(endDateLayout))
	}
	return b.String()
}

func (r Rule) String() string {
	return r.Label()
}

func unit(n int, name string) string {
	if n == 1 {
		return name
	}
	return fmt.Sprintf("%d %ss", n, name)
}

// weekdayPhrase uses full names for a single day and abbreviations for lists.
func weekdayPhrase(days WeekdaySet) string {
	switch {
	case days == Weekdays:
		return "weekday"
	case days.Len() == 1:
		d, _ := days.first()
		return d.String()
	default:
		return days.String()
	}
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
