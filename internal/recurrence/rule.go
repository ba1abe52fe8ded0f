// Package recurrence models recurrence rules and computes their occurrences.
package recurrence

import (
	"time"
)

// Frequency is the unit a rule repeats in.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Pattern is the frequency-specific part of a rule. Only the types in this
// package implement it.
type Pattern interface {
	Frequency() Frequency
	isPattern()
}

// Daily repeats every interval days.
type Daily struct{}

// Weekly repeats on Days every interval weeks. An empty set repeats on the
// anchor's own weekday.
type Weekly struct {
	Days WeekdaySet
}

// Monthly repeats on Day every interval months, clamped to short months.
// Day 0 means the day of month of the date being advanced from.
type Monthly struct {
	Day int
}

// Yearly repeats on the same month and day every interval years.
type Yearly struct{}

func (Daily) Frequency() Frequency   { return FrequencyDaily }
func (Weekly) Frequency() Frequency  { return FrequencyWeekly }
func (Monthly) Frequency() Frequency { return FrequencyMonthly }
func (Yearly) Frequency() Frequency  { return FrequencyYearly }

func (Daily) isPattern()   {}
func (Weekly) isPattern()  {}
func (Monthly) isPattern() {}
func (Yearly) isPattern()  {}

// Rule is an immutable recurrence rule. The zero value is not valid; build
// rules with New or one of the frequency constructors.
type Rule struct {
	interval int
	pattern  Pattern
	endDate  *time.Time
}

// New validates and builds a rule.
func New(interval int, pattern Pattern) (Rule, error) {
	if interval < 1 || interval > MaxInterval {
		return Rule{}, ErrInvalidInterval
	}
	switch p := pattern.(type) {
	case Daily, Yearly:
	case Weekly:
		if p.Days&^0x7f != 0 {
			return Rule{}, ErrWeekdayRange
		}
	case Monthly:
		if p.Day < 0 || p.Day > 31 {
			return Rule{}, ErrDayOfMonthRange
		}
	default:
		return Rule{}, ErrUnknownFrequency
	}
	return Rule{interval: interval, pattern: pattern}, nil
}

func NewDaily(interval int) (Rule, error) {
	return New(interval, Daily{})
}

func NewWeekly(interval int, days ...time.Weekday) (Rule, error) {
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return Rule{}, ErrWeekdayRange
		}
	}
	return New(interval, Weekly{Days: NewWeekdaySet(days...)})
}

func NewMonthly(interval, day int) (Rule, error) {
	return New(interval, Monthly{Day: day})
}

func NewYearly(interval int) (Rule, error) {
	return New(interval, Yearly{})
}

// WithEndDate returns a copy of r that ends on the given calendar date,
// inclusive. Only the date part of end is kept.
func (r Rule) WithEndDate(end time.Time) Rule {
	d := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	r.endDate = &d
	return r
}

func (r Rule) Interval() int        { return r.interval }
func (r Rule) Pattern() Pattern     { return r.pattern }
func (r Rule) IsZero() bool         { return r.pattern == nil }
func (r Rule) Frequency() Frequency { return r.pattern.Frequency() }

// EndDate returns the inclusive last date of the series, if any.
func (r Rule) EndDate() (time.Time, bool) {
	if r.endDate == nil {
		return time.Time{}, false
	}
	return *r.endDate, true
}

// Equal reports whether r and o describe the same recurrence.
func (r Rule) Equal(o Rule) bool {
	if r.interval != o.interval || r.pattern != o.pattern {
		return false
	}
	re, rok := r.EndDate()
	oe, ook := o.EndDate()
	if rok != ook {
		return false
	}
	return !rok || (re.Year() == oe.Year() && re.YearDay() == oe.YearDay())
}
