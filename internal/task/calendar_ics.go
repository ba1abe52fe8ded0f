package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"recurring-task-engine/internal/model"
)

const icsDateLayout = "20060102"

var ErrNoDueDate = errors.New("task due date required for calendar export")

// BuildTaskCalendarICS builds an all-day iCalendar event for a task. Recurring
// tasks carry their rule as RRULE so clients expand the series themselves.
func BuildTaskCalendarICS(t model.Task, now time.Time) (string, error) {
	if t.DueDate == nil {
		return "", ErrNoDueDate
	}
	due := *t.DueDate
	end := due.AddDate(0, 0, 1)

	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = "Task"
	}

	uid := fmt.Sprintf("task-%s@recurring-task-engine", t.SeriesRootID())
	if t.ID == "" {
		uid = fmt.Sprintf("task-export-%d@recurring-task-engine", now.UnixNano())
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Recurring Task Engine//Task Export//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + escapeICSText(uid),
		"DTSTAMP:" + now.UTC().Format("20060102T150405Z"),
		"SUMMARY:" + escapeICSText(title),
		"DTSTART;VALUE=DATE:" + due.Format(icsDateLayout),
		"DTEND;VALUE=DATE:" + end.Format(icsDateLayout),
	}
	if desc := strings.TrimSpace(t.Description); desc != "" {
		lines = append(lines, "DESCRIPTION:"+escapeICSText(desc))
	}
	if len(t.Tags) > 0 {
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = escapeICSText(tag)
		}
		lines = append(lines, "CATEGORIES:"+strings.Join(tags, ","))
	}
	if t.IsRecurring && t.Recurrence != nil && !t.Recurrence.IsZero() {
		lines = append(lines, "RRULE:"+t.Recurrence.RRULE())
	}
	lines = append(lines, "END:VEVENT", "END:VCALENDAR", "")

	return strings.Join(lines, "\r\n"), nil
}

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
