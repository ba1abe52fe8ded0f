package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reInDuration = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months|year|years)$`)
	reISODate    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	reDMYDate    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	reMonthDay   = regexp.MustCompile(`^([a-z]+)\.? (\d{1,2})(?:st|nd|rd|th)?(?:,? (\d{4}))?$`)
	reDayMonth   = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)? (?:of )?([a-z]+)\.?(?:,? (\d{4}))?$`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// Parser converts natural date phrases to absolute dates.
// Ambiguous phrases resolve forward: a bare weekday or a month-day without a
// year is the next such date, never one in the past.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone dates are resolved in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date phrase to midnight of the resolved day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	phrase = reSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(phrase)), " ")
	today := p.startOfDay(baseTime)

	switch phrase {
	case "":
		return time.Time{}, ErrUnrecognized
	case "today", "tonight":
		return today, nil
	case "tomorrow", "tmr":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return time.Time{}, ErrPastDate
	case "next week":
		return today.AddDate(0, 0, 7), nil
	case "next month":
		return AddMonthsClamped(today, 1), nil
	case "next year":
		return AddMonthsClamped(today, 12), nil
	case "end of week", "this weekend", "weekend":
		return today.AddDate(0, 0, (7-int(today.Weekday()))%7), nil
	case "end of month":
		return DateIn(today.Year(), today.Month(), DaysInMonth(today.Year(), today.Month()), p.location), nil
	}

	// Handle "in X days/weeks/months/years"
	if strings.HasPrefix(phrase, "in ") {
		return p.parseInDuration(phrase, today)
	}

	// Handle "next <weekday>" and "this <weekday>"
	if rest, ok := strings.CutPrefix(phrase, "next "); ok {
		return p.parseWeekday(rest, today, false)
	}
	if rest, ok := strings.CutPrefix(phrase, "this "); ok {
		return p.parseWeekday(rest, today, true)
	}
	if strings.HasPrefix(phrase, "on ") {
		return p.Parse(strings.TrimPrefix(phrase, "on "), baseTime)
	}
	if _, ok := LookupWeekday(phrase); ok {
		return p.parseWeekday(phrase, today, false)
	}

	return p.parseAbsolute(phrase, today)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(phrase string, today time.Time) (time.Time, error) {
	matches := reInDuration.FindStringSubmatch(phrase)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, phrase)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrUnrecognized, err)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDate(0, 0, amount*7), nil
	case strings.HasPrefix(unit, "month"):
		return AddMonthsClamped(today, amount), nil
	case strings.HasPrefix(unit, "year"):
		return AddMonthsClamped(today, amount*12), nil
	}

	return time.Time{}, fmt.Errorf("%w: unknown time unit %q", ErrUnrecognized, unit)
}

// parseWeekday resolves a weekday name 1..7 days ahead, or 0..6 when allowToday.
func (p *Parser) parseWeekday(name string, today time.Time, allowToday bool) (time.Time, error) {
	target, ok := LookupWeekday(name)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, name)
	}

	if allowToday && today.Weekday() == target {
		return today, nil
	}
	return today.AddDate(0, 0, DaysUntil(today.Weekday(), target)), nil
}

// parseAbsolute handles ISO, D/M/Y and month-name dates.
func (p *Parser) parseAbsolute(phrase string, today time.Time) (time.Time, error) {
	if m := reISODate.FindStringSubmatch(phrase); m != nil {
		return p.buildDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := reDMYDate.FindStringSubmatch(phrase); m != nil {
		return p.buildDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}

	var monthName, dayStr, yearStr string
	if m := reMonthDay.FindStringSubmatch(phrase); m != nil {
		monthName, dayStr, yearStr = m[1], m[2], m[3]
	} else if m := reDayMonth.FindStringSubmatch(phrase); m != nil {
		dayStr, monthName, yearStr = m[1], m[2], m[3]
	} else {
		return time.Time{}, ErrUnrecognized
	}

	month, ok := LookupMonth(monthName)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown month %q", ErrUnrecognized, monthName)
	}
	day := atoi(dayStr)

	if yearStr != "" {
		return p.buildDate(atoi(yearStr), int(month), day)
	}

	// No year given: the nearest occurrence on or after today.
	for year := today.Year(); year <= today.Year()+4; year++ {
		candidate, err := p.buildDate(year, int(month), day)
		if err != nil {
			continue // Feb 29 outside a leap year
		}
		if CompareDate(candidate, today) >= 0 {
			return candidate, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s %d", ErrInvalidDate, month, day)
}

// buildDate validates y-m-d without normalizing overflow into the next month.
func (p *Parser) buildDate(y, m, d int) (time.Time, error) {
	if m < 1 || m > 12 || d < 1 || d > DaysInMonth(y, time.Month(m)) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, y, m, d)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, p.location), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	return StartOfDay(t.In(p.location))
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
