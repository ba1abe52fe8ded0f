package recurrence

import (
	"strings"
	"time"
)

// WeekdaySet is an unordered set of weekdays stored as a bitmask (bit 0 = Sunday).
type WeekdaySet uint8

// Weekdays is Monday through Friday.
const Weekdays WeekdaySet = 1<<time.Monday | 1<<time.Tuesday | 1<<time.Wednesday | 1<<time.Thursday | 1<<time.Friday

// NewWeekdaySet builds a set from the given days. Duplicates collapse.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// Add returns s with d included.
func (s WeekdaySet) Add(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d%7)
}

// Has reports whether d is in s.
func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d%7)) != 0
}

func (s WeekdaySet) Empty() bool {
	return s&0x7f == 0
}

func (s WeekdaySet) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Days returns the members in ascending order, Sunday first.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// Ints returns the members as 0..6 indices in ascending order.
func (s WeekdaySet) Ints() []int {
	days := s.Days()
	out := make([]int, len(days))
	for i, d := range days {
		out[i] = int(d)
	}
	return out
}

// first returns the smallest member, or false when s is empty.
func (s WeekdaySet) first() (time.Weekday, bool) {
	return s.after(-1)
}

// after returns the smallest member strictly greater than d.
func (s WeekdaySet) after(d time.Weekday) (time.Weekday, bool) {
	for x := d + 1; x <= time.Saturday; x++ {
		if s.Has(x) {
			return x, true
		}
	}
	return 0, false
}

func (s WeekdaySet) String() string {
	days := s.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()[:3]
	}
	return strings.Join(names, ", ")
}
