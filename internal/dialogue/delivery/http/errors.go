package http

import (
	"errors"
	"net/http"

	"cognitive-router/internal/dialogue"
	pkgErrors "cognitive-router/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dialogue.ErrInvalidKey):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "X-User-ID header is required")
	case errors.Is(err, dialogue.ErrTooManyConflicts):
		return pkgErrors.NewHTTPError(http.StatusConflict, "conversation is busy, retry")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
