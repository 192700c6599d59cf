package impl

import (
	"testing"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput_ListsFailedFields(t *testing.T) {
	err := validateInput(usecase.RegisterInput{Email: "bad"})

	require.Error(t, err)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Name required")
	assert.Contains(t, appErr.Details(), "Email email")
	assert.Contains(t, appErr.Details(), "Password required")
}

func TestResolveAuthor(t *testing.T) {
	caller := uuid.New()
	other := uuid.New()

	got, err := resolveAuthor(uuid.Nil, caller)
	require.NoError(t, err)
	assert.Equal(t, caller, got)

	got, err = resolveAuthor(other, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, other, got)

	_, err = resolveAuthor(other, caller)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = resolveAuthor(uuid.Nil, uuid.Nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckOwner(t *testing.T) {
	owner := uuid.New()

	assert.NoError(t, checkOwner(owner, owner))
	assert.NoError(t, checkOwner(uuid.Nil, owner))
	assert.ErrorIs(t, checkOwner(uuid.New(), owner), domainerrors.ErrForbidden)
}

func TestTrimmed(t *testing.T) {
	assert.Equal(t, "", trimmed(nil))
	assert.Equal(t, "x", trimmed(strPtr("  x ")))
}
