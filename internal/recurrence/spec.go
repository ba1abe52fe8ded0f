package recurrence

import (
	"encoding/json"
	"fmt"
	"time"
)

const endDateLayout = "2006-01-02"

// Spec is the flat wire form of a rule, as stored and sent over the API.
type Spec struct {
	Frequency  Frequency `json:"frequency"              yaml:"frequency"`
	Interval   int       `json:"interval,omitempty"     yaml:"interval,omitempty"`
	DaysOfWeek []int     `json:"days_of_week,omitempty" yaml:"days_of_week,omitempty,flow"`
	DayOfMonth int       `json:"day_of_month,omitempty" yaml:"day_of_month,omitempty"`
	EndDate    string    `json:"end_date,omitempty"     yaml:"end_date,omitempty"`
}

// Spec returns the wire form of r. Days are ascending.
func (r Rule) Spec() Spec {
	s := Spec{Frequency: r.Frequency(), Interval: r.interval}
	switch p := r.pattern.(type) {
	case Weekly:
		s.DaysOfWeek = p.Days.Ints()
	case Monthly:
		s.DayOfMonth = p.Day
	}
	if r.endDate != nil {
		s.EndDate = r.endDate.Format(endDateLayout)
	}
	return s
}

// Rule validates s and builds the rule. The end date is placed in loc.
// Fields that do not belong to the frequency are rejected.
func (s Spec) Rule(loc *time.Location) (Rule, error) {
	interval := s.Interval
	if interval == 0 {
		interval = 1
	}
	if interval < 1 {
		return Rule{}, ErrInvalidInterval
	}
	if len(s.DaysOfWeek) > 0 && s.Frequency != FrequencyWeekly {
		return Rule{}, ErrDaysOfWeekNotWeekly
	}
	if s.DayOfMonth != 0 && s.Frequency != FrequencyMonthly {
		return Rule{}, ErrDayOfMonthNotMonthly
	}

	var pattern Pattern
	switch s.Frequency {
	case FrequencyDaily:
		pattern = Daily{}
	case FrequencyWeekly:
		var days WeekdaySet
		for _, d := range s.DaysOfWeek {
			if d < 0 || d > 6 {
				return Rule{}, fmt.Errorf("%w: got %d", ErrWeekdayRange, d)
			}
			days = days.Add(time.Weekday(d))
		}
		pattern = Weekly{Days: days}
	case FrequencyMonthly:
		if s.DayOfMonth < 0 || s.DayOfMonth > 31 {
			return Rule{}, fmt.Errorf("%w: got %d", ErrDayOfMonthRange, s.DayOfMonth)
		}
		pattern = Monthly{Day: s.DayOfMonth}
	case FrequencyYearly:
		pattern = Yearly{}
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, s.Frequency)
	}

	r, err := New(interval, pattern)
	if err != nil {
		return Rule{}, err
	}
	if s.EndDate != "" {
		if loc == nil {
			loc = time.UTC
		}
		end, err := time.ParseInLocation(endDateLayout, s.EndDate, loc)
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %q", ErrInvalidEndDate, s.EndDate)
		}
		r = r.WithEndDate(end)
	}
	return r, nil
}

func (r Rule) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(r.Spec())
}

// UnmarshalJSON decodes and validates the wire form. End dates decode in UTC.
func (r *Rule) UnmarshalJSON(b []byte) error {
	var s Spec
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	rule, err := s.Rule(time.UTC)
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

// In returns a copy of r with its end date moved to the same calendar date in loc.
func (r Rule) In(loc *time.Location) Rule {
	if r.endDate == nil || loc == nil {
		return r
	}
	return r.WithEndDate(time.Date(r.endDate.Year(), r.endDate.Month(), r.endDate.Day(), 0, 0, 0, 0, loc))
}
