package repository

import (
	"context"
	"time"

	"recurring-task-engine/internal/model"
)

// Repository is the persistence contract of the task domain.
type Repository interface {
	// CreateTask stores a series root (or plain task) together with its assignees.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// CreateTaskInstance stores a generated series instance and returns its id.
	// It fails with ErrIndexConflict when the (root, index) pair is taken.
	CreateTaskInstance(ctx context.Context, opt CreateTaskOptions) (string, error)

	// GetTask returns a zero Task (ID == "") when id does not exist.
	GetTask(ctx context.Context, id string) (model.Task, error)

	// GetInstancesBySeriesRoot lists the root and every instance pointing at it.
	GetInstancesBySeriesRoot(ctx context.Context, rootID string) ([]SeriesInstance, error)

	CopyAssignees(ctx context.Context, srcTaskID, dstTaskID string) error
	// MarkComplete fails with ErrAlreadyCompleted when the stored task is
	// already done, so only one caller ever completes a given task.
	MarkComplete(ctx context.Context, taskID string, completedAt time.Time) error
	DeleteTask(ctx context.Context, id string) error
}

// SeriesInstance is the index entry of one task in a series.
type SeriesInstance struct {
	ID              string
	RecurrenceIndex int
	ParentTaskID    string
}
