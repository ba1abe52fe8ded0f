package http

import (
	"errors"
	"net/http"

	"recurring-task-engine/internal/recurrence"
	"recurring-task-engine/internal/task"
	pkgErrors "recurring-task-engine/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong query")
	errMissingID  = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are returned as-is and rendered as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrAlreadyCompleted):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, task.ErrNotRecurring), errors.Is(err, task.ErrNoDueDate):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidImportance),
		errors.Is(err, task.ErrScheduleConflict),
		errors.Is(err, task.ErrScheduleUnmatched),
		errors.Is(err, task.ErrEmptyText),
		errors.Is(err, task.ErrInvalidCount):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, recurrence.ErrInvalidRule):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrAdvanceFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, task.ErrAdvanceFailed.Error())
	case errors.Is(err, task.ErrCompleteFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, task.ErrCompleteFailed.Error())
	default:
		return err
	}
}

// badRequest wraps a rule construction error so it renders as 400.
func badRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}
