package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Configuration & Environment Errors
var (
	ErrConfigInvalid = errors.New("configuration invalid")
)

// NewConfigInvalidError reports a configuration key whose value cannot be used.
func NewConfigInvalidError(key, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigInvalid,
		Details:    fmt.Sprintf("%s: %s", key, reason),
		Field:      key,
	}
}

func IsConfigInvalidError(err error) bool {
	return errors.Is(err, ErrConfigInvalid)
}
