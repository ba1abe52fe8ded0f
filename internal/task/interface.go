package task

import (
	"context"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/pkg/gcalendar"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Interpret previews how schedule text would be understood. It never fails on unparseable text.
	Interpret(ctx context.Context, sc model.Scope, input InterpretInput) (InterpretOutput, error)

	// Create stores a new task. A recurring task becomes the root of its series.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Complete marks a task done and, for recurring tasks, materializes the next instance.
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (CompleteOutput, error)

	// Series lists every instance sharing the task's series root, ordered by index.
	Series(ctx context.Context, sc model.Scope, id string) (SeriesOutput, error)

	// Occurrences previews upcoming dates of the task's recurrence.
	Occurrences(ctx context.Context, sc model.Scope, input OccurrencesInput) (OccurrencesOutput, error)

	// ExportCalendar renders the task as an iCalendar document.
	ExportCalendar(ctx context.Context, sc model.Scope, id string) (CalendarOutput, error)

	Delete(ctx context.Context, sc model.Scope, id string) error
}

// CalendarSyncer pushes recurring tasks to an external calendar.
// *gcalendar.Client satisfies it.
type CalendarSyncer interface {
	CreateRecurringEvent(ctx context.Context, req gcalendar.CreateRecurringEventRequest) (*gcalendar.Event, error)
}
