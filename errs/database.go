package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrDatastoreUnavailable = errors.New("datastore unavailable")
)

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
		kind:       ErrConflict,
	}
}

// NewNotFound reports a lookup by identifier that matched no record, e.g. "Post not found".
func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDatastoreError creates a new datastore error with details about the operation.
// Failures are never retried; they surface to the caller as a 500.
func NewDatastoreError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("failed to %s %s", operation, entity)

	if cause != nil && strings.Contains(strings.ToLower(cause.Error()), "duplicate key") {
		conflict := NewAlreadyExists(entity)
		conflict.Details = details
		conflict.Cause = cause
		return conflict
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatastoreUnavailable,
		Details:    details,
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsDatastoreUnavailable(err error) bool {
	return errors.Is(err, ErrDatastoreUnavailable)
}
