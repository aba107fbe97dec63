package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        *ApiErr
		wantStatus int
		wantMsg    string
		is         func(error) bool
	}{
		{name: "invalid credentials", err: NewInvalidCredentialsError(), wantStatus: http.StatusUnauthorized, wantMsg: "Invalid credentials", is: IsInvalidCredentialsError},
		{name: "missing token", err: NewMissingTokenError(), wantStatus: http.StatusUnauthorized, wantMsg: "Not authenticated", is: IsMissingTokenError},
		{name: "invalid token", err: NewInvalidTokenError(errors.New("signature is invalid")), wantStatus: http.StatusUnauthorized, wantMsg: "Invalid token", is: IsInvalidTokenError},
		{name: "missing subject", err: NewMissingSubjectError(), wantStatus: http.StatusUnauthorized, wantMsg: "Invalid token: missing subject", is: IsMissingSubjectError},
		{name: "not found", err: NewNotFound("Post"), wantStatus: http.StatusNotFound, wantMsg: "Post not found", is: IsNotFound},
		{name: "missing field", err: NewMissingRequiredFieldError("title"), wantStatus: http.StatusBadRequest, wantMsg: "title is required", is: IsMissingRequiredFieldError},
		{name: "malformed payload", err: NewMalformedPayloadError("post", errors.New("unexpected EOF")), wantStatus: http.StatusBadRequest, wantMsg: "malformed post payload", is: IsMalformedPayloadError},
		{name: "invalid field", err: NewInvalidFieldError("published_only", "must be a boolean"), wantStatus: http.StatusBadRequest, wantMsg: "invalid published_only: must be a boolean", is: IsInvalidFieldError},
		{name: "internal", err: NewInternalError("Internal Server Error"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal Server Error", is: IsInternal},
		{name: "already exists", err: NewAlreadyExists("user"), wantStatus: http.StatusConflict, wantMsg: "user already exists", is: IsAlreadyExists},
		{name: "datastore", err: NewDatastoreError("find", "posts", errors.New("connection refused")), wantStatus: http.StatusInternalServerError, is: IsDatastoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.StatusCode)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, tt.err.Error())
			}
			assert.True(t, tt.is(tt.err))
			assert.True(t, tt.is(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

func TestUnauthorizedKindStaysOutOfMessage(t *testing.T) {
	err := NewInvalidCredentialsError()
	assert.True(t, IsUnauthorized(err))
	assert.NotContains(t, err.Error(), "unauthorized")
}

func TestValidationErrorsAreBadRequests(t *testing.T) {
	for _, err := range []*ApiErr{
		NewMalformedPayloadError("login", nil),
		NewMissingRequiredFieldError("username"),
		NewInvalidFieldError("publishedOnly", "must be a boolean"),
	} {
		assert.True(t, IsBadRequest(err), err.Error())
		assert.False(t, IsInternal(err), err.Error())
	}
	assert.False(t, IsBadRequest(NewInvalidCredentialsError()))
}

func TestDatastoreDuplicateKeyIsConflict(t *testing.T) {
	cause := errors.New("E11000 duplicate key error collection: users")
	err := NewDatastoreError("create", "user", cause)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.True(t, IsAlreadyExists(err))
	assert.Equal(t, "user already exists: failed to create user", err.Error())
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, cause, err.Cause)
}

func TestGetFullErrorIncludesCause(t *testing.T) {
	err := NewInternalErrorWithCause("failed to issue token", errors.New("key is invalid"))
	assert.Equal(t, "failed to issue token -> key is invalid", err.GetFullError())
}
