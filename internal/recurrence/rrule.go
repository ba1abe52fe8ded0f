package recurrence

import (
	"fmt"
	"strings"
	"time"
)

var rruleDays = [...]string{time.Sunday: "SU", time.Monday: "MO", time.Tuesday: "TU",
	time.Wednesday: "WE", time.Thursday: "TH", time.Friday: "FR", time.Saturday: "SA"}

// RRULE formats r as an RFC 5545 recurrence rule value, without the
// "RRULE:" prefix. Month days past the 28th use BYSETPOS so calendar
// clients clamp short months the same way NextOccurrence does.
func (r Rule) RRULE() string {
	if r.IsZero() {
		return ""
	}
	parts := []string{"FREQ=" + strings.ToUpper(string(r.Frequency()))}
	if r.interval > 1 {
		parts = append(parts, fmt.Sprintf("INTERVAL=%d", r.interval))
	}

	switch p := r.pattern.(type) {
	case Weekly:
		if !p.Days.Empty() {
			days := p.Days.Days()
			codes := make([]string, len(days))
			for i, d := range days {
				codes[i] = rruleDays[d]
			}
			parts = append(parts, "BYDAY="+strings.Join(codes, ","))
		}
	case Monthly:
		switch {
		case p.Day > 28:
			candidates := make([]string, 0, p.Day-27)
			for d := 28; d <= p.Day; d++ {
				candidates = append(candidates, fmt.Sprint(d))
			}
			parts = append(parts, "BYMONTHDAY="+strings.Join(candidates, ","), "BYSETPOS=-1")
		case p.Day > 0:
			parts = append(parts, fmt.Sprintf("BYMONTHDAY=%d", p.Day))
		}
	}

	if end, ok := r.EndDate(); ok {
		parts = append(parts, "UNTIL="+end.Format("20060102"))
	}
	return strings.Join(parts, ";")
}
