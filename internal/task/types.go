package task

import (
	"time"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/recurrence"
)

// InterpretInput is the input for previewing schedule text.
type InterpretInput struct {
	Text          string
	ReferenceDate *time.Time // defaults to today
}

// InterpretOutput mirrors interpreter.Result for callers outside the engine.
type InterpretOutput struct {
	Date       *time.Time
	Recurrence *recurrence.Rule
	Label      string
	Matched    bool
}

// CreateInput is the input for creating a task.
// Recurrence and Schedule are mutually exclusive; Schedule is interpreted text
// such as "every monday" or "next friday".
type CreateInput struct {
	Title       string
	Description string
	Effort      int
	Importance  int
	Tags        []string
	ProjectID   string
	AssigneeIDs []string // defaults to the caller
	DueDate     *time.Time
	Recurrence  *recurrence.Rule
	Schedule    string
}

type CompleteInput struct {
	TaskID string
}

// CompleteOutput reports what completing a task produced.
type CompleteOutput struct {
	Completed   model.Task
	NextTask    *model.Task // nil when nothing was created
	SeriesEnded bool        // the rule has no occurrence after the completed one

	// Degraded is set when the next instance exists but its assignees could not be copied.
	Degraded       bool
	DegradedReason string
}

// SeriesOutput lists the instances of one series.
type SeriesOutput struct {
	RootID    string
	Instances []model.Task
}

type OccurrencesInput struct {
	TaskID string
	Count  int // defaults to 5
}

// OccurrencesOutput lists upcoming dates after the task's due date.
type OccurrencesOutput struct {
	From        time.Time
	Dates       []time.Time
	Label       string
	SeriesEnded bool // fewer than Count dates remain before the end date
}

// CalendarOutput is a rendered iCalendar document.
type CalendarOutput struct {
	Filename string
	Content  []byte
}
