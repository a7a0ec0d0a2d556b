package http

import (
	"errors"
	"net/http"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/preprocess"
	"cognitive-router/internal/router"
	pkgErrors "cognitive-router/pkg/errors"
)

var errMissingUser = pkgErrors.NewHTTPError(http.StatusBadRequest, "user_id is required")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, router.ErrMissingUserID), errors.Is(err, dialogue.ErrInvalidKey):
		return errMissingUser
	case errors.Is(err, preprocess.ErrInputTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "message is too long")
	case errors.Is(err, dialogue.ErrTooManyConflicts):
		return pkgErrors.NewHTTPError(http.StatusConflict, "conversation is busy, retry the turn")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
