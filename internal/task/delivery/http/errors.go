package http

import (
	"errors"
	"net/http"

	"cognitive-router/internal/task"
	pkgErrors "cognitive-router/pkg/errors"
)

var (
	errMissingID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidDueAt  = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_at must be RFC3339")
	errInvalidStatus = pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be pending or completed")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyOwner):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "X-User-ID header is required")
	case errors.Is(err, task.ErrEmptyDescription):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "description is required")
	case errors.Is(err, task.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrAlreadyCompleted):
		return pkgErrors.NewHTTPError(http.StatusConflict, "task is already completed")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
