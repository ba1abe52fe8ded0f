package usecase

import (
	"context"
	"errors"
	"fmt"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/task"
	"recurring-task-engine/internal/task/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Detail: %v", err)
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Delete removes a single instance. Later instances keep their indices.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.DeleteTask(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	uc.l.Infof(ctx, "task.usecase.Delete: user=%s task=%s", sc.UserID, id)
	return nil
}
