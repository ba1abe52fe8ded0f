package usecase

import (
	"context"
	"fmt"
	"strings"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/recurrence"
	"recurring-task-engine/internal/task"
	"recurring-task-engine/internal/task/repository"
	"recurring-task-engine/pkg/gcalendar"
)

// Create stores a new root task, resolving schedule text through the interpreter.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}
	if input.Importance < 0 || input.Importance > 5 {
		return model.Task{}, task.ErrInvalidImportance
	}
	if input.Recurrence != nil && strings.TrimSpace(input.Schedule) != "" {
		return model.Task{}, task.ErrScheduleConflict
	}

	opt := repository.CreateTaskOptions{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Effort:      input.Effort,
		Importance:  input.Importance,
		Tags:        cloneStrings(input.Tags),
		ProjectID:   input.ProjectID,
		AssigneeIDs: cloneStrings(input.AssigneeIDs),
		Status:      model.StatusTodo,
	}
	if len(opt.AssigneeIDs) == 0 && sc.UserID != "" {
		opt.AssigneeIDs = []string{sc.UserID}
	}
	if input.DueDate != nil {
		due := uc.asDate(*input.DueDate)
		opt.DueDate = &due
	}

	var rule *recurrence.Rule
	switch {
	case input.Recurrence != nil:
		r := input.Recurrence.In(uc.loc)
		rule = &r
	case strings.TrimSpace(input.Schedule) != "":
		res := uc.interpreter.Interpret(input.Schedule, uc.localNow())
		if !res.Matched() {
			return model.Task{}, task.ErrScheduleUnmatched
		}
		rule = res.Recurrence
		if opt.DueDate == nil {
			opt.DueDate = res.Date
		}
	}

	if rule != nil {
		if rule.IsZero() {
			return model.Task{}, recurrence.ErrUnknownFrequency
		}
		opt.IsRecurring = true
		opt.Recurrence = rule
		if opt.DueDate == nil {
			today := uc.today()
			opt.DueDate = &today
		}
	}

	t, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "task.usecase.Create: user=%s task=%s recurring=%t", sc.UserID, t.ID, t.IsRecurring)

	if t.IsRecurring {
		uc.trySyncCalendar(ctx, t)
	}
	return t, nil
}

// trySyncCalendar pushes the series to the external calendar.
// Failures are logged and never fail the creation.
func (uc *implUseCase) trySyncCalendar(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil || t.Recurrence == nil {
		return
	}

	event, err := uc.calendar.CreateRecurringEvent(ctx, gcalendar.CreateRecurringEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		Date:        *t.DueDate,
		RRULE:       t.Recurrence.RRULE(),
		Timezone:    uc.loc.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.trySyncCalendar: task=%s: %v", t.ID, err)
		return
	}

	uc.l.Infof(ctx, "task.usecase.trySyncCalendar: task=%s event=%s link=%s", t.ID, event.ID, event.HtmlLink)
}
