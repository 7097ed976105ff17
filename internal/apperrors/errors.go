package apperrors

import (
	"errors"
	"net/http"
)

// Sentinels for the outcomes a handler can report. Wrap them with
// fmt.Errorf("%w: ...") to attach detail.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrNotFound         = errors.New("resource not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrUnprocessable    = errors.New("unprocessable")
	ErrInternal         = errors.New("internal server error")
)

// StatusCode maps err to an HTTP status. Anything unclassified is a 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// IsClassified reports whether err wraps one of the sentinels above.
func IsClassified(err error) bool {
	for _, target := range []error{ErrBadRequest, ErrNotFound, ErrMethodNotAllowed, ErrUnprocessable, ErrInternal} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
