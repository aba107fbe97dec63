package errs

import (
	"errors"
	"net/http"
)

// Authentication & Authorization Errors
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrMissingToken       = errors.New("Not authenticated")
	ErrInvalidToken       = errors.New("Invalid token")
	ErrMissingSubject     = errors.New("Invalid token: missing subject")
)

// Authentication & Authorization Error Constructors
func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidCredentials,
		kind:       ErrUnauthorized,
	}
}

func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		kind:       ErrUnauthorized,
		Field:      "authorization",
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		kind:       ErrUnauthorized,
		Field:      "authorization",
		Cause:      cause,
	}
}

func NewMissingSubjectError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingSubject,
		kind:       ErrUnauthorized,
		Field:      "authorization",
	}
}

// Authentication & Authorization Error Type Checkers
func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsMissingTokenError(err error) bool {
	return errors.Is(err, ErrMissingToken)
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsMissingSubjectError(err error) bool {
	return errors.Is(err, ErrMissingSubject)
}
