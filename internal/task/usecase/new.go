package usecase

import (
	"time"

	"recurring-task-engine/internal/interpreter"
	"recurring-task-engine/internal/task"
	"recurring-task-engine/internal/task/repository"
	pkgLog "recurring-task-engine/pkg/log"
)

// maxIndexRetries bounds re-reads of the series family after an index conflict.
const maxIndexRetries = 1

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	interpreter interpreter.Interpreter
	calendar    task.CalendarSyncer
	calendarID  string
	loc         *time.Location
	now         func() time.Time
}

// Config holds the optional collaborators of the task UseCase.
type Config struct {
	Calendar   task.CalendarSyncer // nil disables calendar sync
	CalendarID string
	Location   *time.Location // calendar days are resolved here; defaults to UTC
	Now        func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	interp interpreter.Interpreter,
	cfg Config,
) task.UseCase {
	uc := &implUseCase{
		l:           l,
		repo:        repo,
		interpreter: interp,
		calendar:    cfg.Calendar,
		calendarID:  cfg.CalendarID,
		loc:         cfg.Location,
		now:         cfg.Now,
	}
	if uc.loc == nil {
		uc.loc = time.UTC
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}
