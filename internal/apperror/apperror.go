// Package apperror defines the domain errors the application raises.
//
// Sentinel errors (ErrNotFound, ErrValidation) are what callers check with
// errors.Is; AppError carries the human-readable detail and wraps the
// sentinel so both checks work on the same value.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

type AppError struct {
	Err     error  // sentinel cause, reachable via errors.Is
	Message string // human-readable error message
	Field   string // optional: form field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that a row with the given id does not exist for the
// current user. A row that exists but belongs to someone else produces the
// same error — ownership filtering happens in the query, so the two cases
// are deliberately indistinguishable.
func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}
