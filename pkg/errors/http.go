package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"error_code"`
	Message    string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError; the error code mirrors the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

// Common HTTP errors.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// AsHTTPError unwraps err into an HTTPError if it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
