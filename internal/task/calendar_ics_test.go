package task

import (
	"errors"
	"strings"
	"testing"
	"time"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/recurrence"
)

func TestBuildTaskCalendarICS(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	due := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	rule, err := recurrence.NewWeekly(2, time.Monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ics, err := BuildTaskCalendarICS(model.Task{
		ID:           "inst-2",
		ParentTaskID: "root-1",
		Title:        "Review; plan, ship",
		Description:  "line one\nline two",
		Tags:         []string{"team"},
		DueDate:      &due,
		IsRecurring:  true,
		Recurrence:   &rule,
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR\r\n",
		"UID:task-root-1@recurring-task-engine\r\n",
		"DTSTAMP:20240501T080000Z\r\n",
		"SUMMARY:Review\\; plan\\, ship\r\n",
		"DESCRIPTION:line one\\nline two\r\n",
		"CATEGORIES:team\r\n",
		"DTSTART;VALUE=DATE:20240506\r\n",
		"DTEND;VALUE=DATE:20240507\r\n",
		"RRULE:FREQ=WEEKLY;INTERVAL=2;BYDAY=MO\r\n",
		"END:VCALENDAR\r\n",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("expected ICS to contain %q, got:\n%s", want, ics)
		}
	}
}

func TestBuildTaskCalendarICS_NoDueDate(t *testing.T) {
	_, err := BuildTaskCalendarICS(model.Task{ID: "t1"}, time.Now())
	if !errors.Is(err, ErrNoDueDate) {
		t.Fatalf("expected ErrNoDueDate, got %v", err)
	}
}

func TestBuildTaskCalendarICS_NonRecurring(t *testing.T) {
	due := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	ics, err := BuildTaskCalendarICS(model.Task{ID: "t1", DueDate: &due}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(ics, "RRULE") {
		t.Errorf("did not expect RRULE for a one-off task")
	}
	if !strings.Contains(ics, "SUMMARY:Task\r\n") {
		t.Errorf("expected default summary")
	}
}
