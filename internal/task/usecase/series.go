package usecase

import (
	"context"
	"fmt"
	"sort"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/recurrence"
	"recurring-task-engine/internal/task"
)

const (
	defaultOccurrenceCount = 5
	maxOccurrenceCount     = 50
)

// Series returns the root and every instance of the task's series, ordered by index.
func (uc *implUseCase) Series(ctx context.Context, sc model.Scope, id string) (task.SeriesOutput, error) {
	t, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return task.SeriesOutput{}, err
	}

	rootID := t.SeriesRootID()
	entries, err := uc.repo.GetInstancesBySeriesRoot(ctx, rootID)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Series: %v", err)
		return task.SeriesOutput{}, fmt.Errorf("failed to list series: %w", err)
	}

	instances := make([]model.Task, 0, len(entries))
	for _, e := range entries {
		inst, err := uc.repo.GetTask(ctx, e.ID)
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.Series: get instance %s: %v", e.ID, err)
			return task.SeriesOutput{}, fmt.Errorf("failed to get series instance: %w", err)
		}
		if inst.ID == "" {
			continue // index entry outlived its task
		}
		instances = append(instances, inst)
	}
	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].RecurrenceIndex < instances[j].RecurrenceIndex
	})

	return task.SeriesOutput{RootID: rootID, Instances: instances}, nil
}

// Occurrences previews the next dates of the task's rule after its due date.
func (uc *implUseCase) Occurrences(ctx context.Context, sc model.Scope, input task.OccurrencesInput) (task.OccurrencesOutput, error) {
	count := input.Count
	if count == 0 {
		count = defaultOccurrenceCount
	}
	if count < 1 || count > maxOccurrenceCount {
		return task.OccurrencesOutput{}, task.ErrInvalidCount
	}

	t, err := uc.Detail(ctx, sc, input.TaskID)
	if err != nil {
		return task.OccurrencesOutput{}, err
	}
	if !t.CanAdvance() {
		return task.OccurrencesOutput{}, task.ErrNotRecurring
	}

	dates := recurrence.Occurrences(*t.Recurrence, *t.DueDate, count)
	return task.OccurrencesOutput{
		From:        *t.DueDate,
		Dates:       dates,
		Label:       t.Recurrence.Label(),
		SeriesEnded: len(dates) < count,
	}, nil
}
