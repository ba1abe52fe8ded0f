package repository

import (
	"time"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/recurrence"
)

// CreateTaskOptions holds the fields of a new task.
type CreateTaskOptions struct {
	Title       string
	Description string
	Effort      int
	Importance  int
	Tags        []string
	ProjectID   string
	AssigneeIDs []string // ignored by CreateTaskInstance, see CopyAssignees

	Status   model.TaskStatus // defaults to todo
	Progress int
	DueDate  *time.Time

	IsRecurring     bool
	Recurrence      *recurrence.Rule
	ParentTaskID    string
	RecurrenceIndex int
}
