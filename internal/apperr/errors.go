// Package apperr classifies failures into the four kinds the HTTP layer reports.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrConnection        = errors.New("store connection failed")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDuplicateResource = errors.New("duplicate resource")
	ErrInternal          = errors.New("internal error")
)

// InvalidArgument wraps ErrInvalidArgument with a formatted detail.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Internal wraps err as ErrInternal unless it is already classified.
func Internal(op string, err error) error {
	if err == nil {
		return nil
	}
	if Classified(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}

func Classified(err error) bool {
	return errors.Is(err, ErrConnection) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrDuplicateResource) ||
		errors.Is(err, ErrInternal)
}

// Status maps an error to the HTTP status code returned to clients.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrDuplicateResource):
		return http.StatusBadRequest
	case errors.Is(err, ErrConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
