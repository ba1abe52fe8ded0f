package interpreter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"recurring-task-engine/internal/recurrence"
	"recurring-task-engine/pkg/datemath"
)

var (
	reSpaces    = regexp.MustCompile(`\s+`)
	reEveryN    = regexp.MustCompile(`^every (\d+|other) (day|week|month|year)s?$`)
	reEveryDays = regexp.MustCompile(`^every (?:other )?(.+)$`)
	reListSep   = regexp.MustCompile(`[\s,&/]+`)
	reUntil     = regexp.MustCompile(`^(.+?),? (?:until|till|through|ending(?: on)?) (.+)$`)
)

// normalize lowercases text, collapses whitespace and drops trailing punctuation.
func normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = reSpaces.ReplaceAllString(text, " ")
	return strings.TrimRight(text, ".!")
}

// matchRecurrence recognizes a recurrence phrase in normalized text and
// returns the rule with the date it first applies to.
func matchRecurrence(text string, today time.Time) (recurrence.Rule, time.Time, bool) {
	wd := today.Weekday()

	switch text {
	case "every day", "everyday", "each day", "daily":
		return ruleAt(recurrence.NewDaily(1))(today)
	case "every week", "each week", "weekly":
		return ruleAt(recurrence.NewWeekly(1, wd))(today)
	case "biweekly", "fortnightly", "every fortnight":
		return ruleAt(recurrence.NewWeekly(2, wd))(today)
	case "every month", "each month", "monthly":
		return ruleAt(recurrence.NewMonthly(1, today.Day()))(today)
	case "every year", "each year", "yearly", "annually":
		return ruleAt(recurrence.NewYearly(1))(today)
	case "every weekday", "every weekdays", "weekdays", "on weekdays":
		anchor := today
		switch wd {
		case time.Saturday:
			anchor = today.AddDate(0, 0, 2)
		case time.Sunday:
			anchor = today.AddDate(0, 0, 1)
		}
		return ruleAt(recurrence.New(1, recurrence.Weekly{Days: recurrence.Weekdays}))(anchor)
	}

	if m := reEveryN.FindStringSubmatch(text); m != nil {
		n := 2
		if m[1] != "other" {
			var err error
			if n, err = strconv.Atoi(m[1]); err != nil || n < 1 || n > recurrence.MaxInterval {
				return recurrence.Rule{}, time.Time{}, false
			}
		}
		switch m[2] {
		case "day":
			return ruleAt(recurrence.NewDaily(n))(today)
		case "week":
			return ruleAt(recurrence.NewWeekly(n, wd))(today)
		case "month":
			return ruleAt(recurrence.NewMonthly(n, today.Day()))(today)
		case "year":
			return ruleAt(recurrence.NewYearly(n))(today)
		}
	}

	if m := reEveryDays.FindStringSubmatch(text); m != nil {
		days, ok := parseWeekdayList(m[1])
		if !ok {
			return recurrence.Rule{}, time.Time{}, false
		}
		interval := 1
		if strings.HasPrefix(text, "every other ") {
			interval = 2
		}
		rule, err := recurrence.New(interval, recurrence.Weekly{Days: days})
		if err != nil {
			return recurrence.Rule{}, time.Time{}, false
		}
		return rule, weekdayAnchor(days, today), true
	}

	return recurrence.Rule{}, time.Time{}, false
}

// ruleAt adapts a rule constructor result to the matcher return shape.
func ruleAt(rule recurrence.Rule, err error) func(anchor time.Time) (recurrence.Rule, time.Time, bool) {
	return func(anchor time.Time) (recurrence.Rule, time.Time, bool) {
		if err != nil {
			return recurrence.Rule{}, time.Time{}, false
		}
		return rule, anchor, true
	}
}

// parseWeekdayList accepts "mon", "monday and friday", "mon, wed & fri" and
// similar. Any unknown token, or a weekday named twice, rejects the list.
func parseWeekdayList(s string) (recurrence.WeekdaySet, bool) {
	var days recurrence.WeekdaySet
	seen := 0
	for _, tok := range reListSep.Split(strings.TrimPrefix(s, "on "), -1) {
		if tok == "" || tok == "and" {
			continue
		}
		d, ok := lookupWeekday(tok)
		if !ok || days.Has(d) {
			return 0, false
		}
		days = days.Add(d)
		seen++
	}
	return days, seen > 0
}

func lookupWeekday(tok string) (time.Weekday, bool) {
	if d, ok := datemath.LookupWeekday(tok); ok {
		return d, true
	}
	// Plural forms: "mondays", "fris".
	if trimmed, ok := strings.CutSuffix(tok, "s"); ok {
		return datemath.LookupWeekday(trimmed)
	}
	return 0, false
}

// weekdayAnchor returns the first selected weekday after today. A single day
// lands 1..7 days ahead. For several days a later day in the current week
// wins, otherwise the earliest selected day of next week.
func weekdayAnchor(days recurrence.WeekdaySet, today time.Time) time.Time {
	wd := today.Weekday()
	for d := wd + 1; d <= time.Saturday; d++ {
		if days.Has(d) {
			return today.AddDate(0, 0, int(d-wd))
		}
	}
	for d := time.Sunday; d <= wd; d++ {
		if days.Has(d) {
			return today.AddDate(0, 0, 7-int(wd)+int(d))
		}
	}
	return today.AddDate(0, 0, 7)
}
