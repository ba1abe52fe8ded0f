package usecase

import (
	"context"
	"strings"
	"time"

	"recurring-task-engine/internal/model"
	"recurring-task-engine/internal/task"
)

// Interpret previews schedule text against today, or against the given reference date.
func (uc *implUseCase) Interpret(ctx context.Context, sc model.Scope, input task.InterpretInput) (task.InterpretOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.InterpretOutput{}, task.ErrEmptyText
	}

	ref := uc.localNow()
	if input.ReferenceDate != nil {
		d := input.ReferenceDate
		ref = time.Date(d.Year(), d.Month(), d.Day(), ref.Hour(), ref.Minute(), 0, 0, uc.loc)
	}

	res := uc.interpreter.Interpret(input.Text, ref)
	uc.l.Debugf(ctx, "task.usecase.Interpret: user=%s kind=%s label=%q", sc.UserID, res.Kind(), res.Label)

	return task.InterpretOutput{
		Date:       res.Date,
		Recurrence: res.Recurrence,
		Label:      res.Label,
		Matched:    res.Matched(),
	}, nil
}
