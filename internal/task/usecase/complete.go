package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/recurrence"
	"recurring-task-engine/internal/task"
	"recurring-task-engine/internal/task/repository"
)

// Complete marks a task done and advances its series.
//
// The completion is committed before the family is read, and it is never
// rolled back: if the next instance cannot be created the returned output
// still carries the completed task alongside an ErrAdvanceFailed error. An
// instance whose assignees could not be copied is reported as Degraded.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input task.CompleteInput) (out task.CompleteOutput, err error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "task.Complete")
	span.SetAttributes(attribute.String("task.id", input.TaskID))
	defer func() {
		advanceDuration.Observe(time.Since(start).Seconds())
		span.SetAttributes(
			attribute.Bool("series.ended", out.SeriesEnded),
			attribute.Bool("series.degraded", out.Degraded),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	t, err := uc.repo.GetTask(ctx, input.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Complete: get task: %v", err)
		return task.CompleteOutput{}, fmt.Errorf("failed to get task: %w", err)
	}
	if t.ID == "" {
		return task.CompleteOutput{}, task.ErrTaskNotFound
	}
	if t.IsCompleted() {
		return task.CompleteOutput{}, task.ErrAlreadyCompleted
	}

	// Step 1: durable completion
	completedAt := uc.now()
	if err := uc.repo.MarkComplete(ctx, t.ID, completedAt); err != nil {
		if errors.Is(err, repository.ErrAlreadyCompleted) {
			// Lost a race with another completion of the same task.
			return task.CompleteOutput{}, task.ErrAlreadyCompleted
		}
		advancementsTotal.WithLabelValues(outcomeFailed).Inc()
		uc.l.Errorf(ctx, "task.usecase.Complete: mark complete task=%s: %v", t.ID, err)
		return task.CompleteOutput{}, fmt.Errorf("%w: %w", task.ErrCompleteFailed, err)
	}
	t.Status = model.StatusDone
	t.Progress = 100
	t.CompletedAt = &completedAt

	out = task.CompleteOutput{Completed: t}
	if !t.CanAdvance() {
		advancementsTotal.WithLabelValues(outcomeNotRecurring).Inc()
		return out, nil
	}

	// Step 2: next occurrence from the completed instance's due date
	nextDue, ok := recurrence.NextOccurrence(*t.Recurrence, *t.DueDate)
	if !ok {
		out.SeriesEnded = true
		advancementsTotal.WithLabelValues(outcomeEnded).Inc()
		uc.l.Infof(ctx, "task.usecase.Complete: series of task=%s ended", t.ID)
		return out, nil
	}

	// Step 3: materialize the successor under the same root
	next, err := uc.createNextInstance(ctx, t, nextDue)
	if err != nil {
		advancementsTotal.WithLabelValues(outcomeFailed).Inc()
		uc.l.Errorf(ctx, "task.usecase.Complete: task=%s completed without successor: %v", t.ID, err)
		return out, fmt.Errorf("%w: %w", task.ErrAdvanceFailed, err)
	}
	out.NextTask = &next

	// Step 4: assignees
	if err := uc.repo.CopyAssignees(ctx, t.ID, next.ID); err != nil {
		out.Degraded = true
		out.DegradedReason = fmt.Sprintf("next instance %s was created without assignees: %v", next.ID, err)
		advancementsTotal.WithLabelValues(outcomeDegraded).Inc()
		uc.l.Errorf(ctx, "task.usecase.Complete: copy assignees %s -> %s: %v", t.ID, next.ID, err)
		return out, nil
	}
	out.NextTask.AssigneeIDs = cloneStrings(t.AssigneeIDs)

	advancementsTotal.WithLabelValues(outcomeAdvanced).Inc()
	uc.l.Infof(ctx, "task.usecase.Complete: user=%s task=%s next=%s index=%d due=%s",
		sc.UserID, t.ID, next.ID, next.RecurrenceIndex, nextDue.Format(time.DateOnly))
	return out, nil
}

// createNextInstance reads the family, picks the next index and creates the
// instance. On an index conflict it re-reads the family and retries.
func (uc *implUseCase) createNextInstance(ctx context.Context, completed model.Task, due time.Time) (model.Task, error) {
	rootID := completed.SeriesRootID()

	for attempt := 0; ; attempt++ {
		instances, err := uc.repo.GetInstancesBySeriesRoot(ctx, rootID)
		if err != nil {
			return model.Task{}, fmt.Errorf("list series %s: %w", rootID, err)
		}

		opt := repository.CreateTaskOptions{
			Title:           completed.Title,
			Description:     completed.Description,
			Effort:          completed.Effort,
			Importance:      completed.Importance,
			Tags:            cloneStrings(completed.Tags),
			ProjectID:       completed.ProjectID,
			Status:          model.StatusTodo,
			Progress:        0,
			DueDate:         &due,
			IsRecurring:     true,
			Recurrence:      cloneRule(completed.Recurrence),
			ParentTaskID:    rootID,
			RecurrenceIndex: nextIndex(instances, completed.RecurrenceIndex),
		}

		id, err := uc.repo.CreateTaskInstance(ctx, opt)
		if err == nil {
			now := uc.now()
			return model.Task{
				ID:              id,
				Title:           opt.Title,
				Description:     opt.Description,
				Effort:          opt.Effort,
				Importance:      opt.Importance,
				Tags:            opt.Tags,
				ProjectID:       opt.ProjectID,
				Status:          opt.Status,
				DueDate:         opt.DueDate,
				IsRecurring:     true,
				Recurrence:      opt.Recurrence,
				ParentTaskID:    rootID,
				RecurrenceIndex: opt.RecurrenceIndex,
				CreatedAt:       now,
				UpdatedAt:       now,
			}, nil
		}
		if !errors.Is(err, repository.ErrIndexConflict) || attempt >= maxIndexRetries {
			return model.Task{}, fmt.Errorf("create instance %d of series %s: %w", opt.RecurrenceIndex, rootID, err)
		}

		indexConflictRetriesTotal.Inc()
		uc.l.Warnf(ctx, "task.usecase.createNextInstance: index %d of series %s taken, retrying", opt.RecurrenceIndex, rootID)
	}
}
