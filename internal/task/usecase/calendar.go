package usecase

import (
	"context"
	"errors"
	"fmt"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/task"
)

// ExportCalendar renders the task as a single VEVENT, with RRULE for recurring tasks.
func (uc *implUseCase) ExportCalendar(ctx context.Context, sc model.Scope, id string) (task.CalendarOutput, error) {
	t, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return task.CalendarOutput{}, err
	}

	ics, err := task.BuildTaskCalendarICS(t, uc.now())
	if errors.Is(err, task.ErrNoDueDate) {
		return task.CalendarOutput{}, err
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ExportCalendar: %v", err)
		return task.CalendarOutput{}, fmt.Errorf("failed to build calendar: %w", err)
	}

	return task.CalendarOutput{
		Filename: fmt.Sprintf("task-%s.ics", t.ID),
		Content:  []byte(ics),
	}, nil
}
