package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	wrapped := ErrUserNotFound.WrapMessage("failed to load author")

	assert.True(t, errors.Is(wrapped, ErrUserNotFound))
	assert.False(t, errors.Is(wrapped, ErrPostNotFound))

	// Login variant is the same kind with a different status.
	assert.True(t, errors.Is(ErrLoginUserNotFound, ErrUserNotFound))
	assert.Equal(t, http.StatusUnauthorized, ErrLoginUserNotFound.HTTPCode())
	assert.Equal(t, http.StatusNotFound, ErrUserNotFound.HTTPCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("title is required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.Equal(t, "title is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Contains(t, detailed.Error(), "title is required")
}

func TestBaseError_AsAppError(t *testing.T) {
	err := errors.Wrap(ErrInvalidCredentials, "login failed")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create post")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create post", err.Details())
	assert.True(t, errors.Is(err, cause))
}
