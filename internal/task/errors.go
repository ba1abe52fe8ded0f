package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyTitle        = errors.New("task title is empty")
	ErrInvalidImportance = errors.New("importance must be between 0 and 5")
	ErrScheduleConflict  = errors.New("recurrence and schedule text are mutually exclusive")
	ErrScheduleUnmatched = errors.New("schedule text could not be interpreted")
	ErrEmptyText         = errors.New("text is empty")
	ErrAlreadyCompleted  = errors.New("task is already completed")
	ErrCompleteFailed    = errors.New("failed to mark task complete")
	ErrAdvanceFailed     = errors.New("task completed but next instance was not created")
	ErrNotRecurring      = errors.New("task is not recurring")
	ErrInvalidCount      = errors.New("count must be between 1 and 50")
)
