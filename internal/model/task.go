package model

import (
	"time"

	"recurring-task-engine/internal/recurrence"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// Task is one stored task. Recurring tasks form a series: the root has no
// ParentTaskID and RecurrenceIndex 0, every generated instance points at the
// root and carries the next index.
type Task struct {
	ID          string
	Title       string
	Description string
	Effort      int // story points / hours, caller-defined
	Importance  int // 1 (low) .. 5 (critical)
	Tags        []string
	ProjectID   string
	AssigneeIDs []string

	Status      TaskStatus
	Progress    int // 0..100
	DueDate     *time.Time
	CompletedAt *time.Time

	IsRecurring     bool
	Recurrence      *recurrence.Rule
	ParentTaskID    string
	RecurrenceIndex int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SeriesRootID returns the id shared by every instance of t's series.
func (t Task) SeriesRootID() string {
	if t.ParentTaskID != "" {
		return t.ParentTaskID
	}
	return t.ID
}

// CanAdvance reports whether completing t should produce a successor.
func (t Task) CanAdvance() bool {
	return t.IsRecurring && t.Recurrence != nil && !t.Recurrence.IsZero() && t.DueDate != nil
}

func (t Task) IsCompleted() bool {
	return t.Status == StatusDone
}
