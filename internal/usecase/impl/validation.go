package impl

import (
	"strings"

	domainerrors "blog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct tag validation and maps failures to ErrValidationFailed
// with the offending fields listed in the details.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field()+" "+fe.Tag())
		}

		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", "))
	}

	return errors.Wrap(err, "failed to validate input")
}

// trimmed returns the trimmed value of an optional string, or "" for nil.
func trimmed(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}

// resolveAuthor picks the author for new content. The caller may only write as themselves.
func resolveAuthor(authorID, callerID uuid.UUID) (uuid.UUID, error) {
	switch {
	case authorID == uuid.Nil && callerID == uuid.Nil:
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("author is required")
	case authorID == uuid.Nil:
		return callerID, nil
	case callerID != uuid.Nil && authorID != callerID:
		return uuid.Nil, domainerrors.ErrForbidden.WithDetails("cannot write on behalf of another user")
	default:
		return authorID, nil
	}
}

// checkOwner enforces that the caller owns the resource. A zero caller is a trusted internal call.
func checkOwner(callerID, ownerID uuid.UUID) error {
	if callerID != uuid.Nil && callerID != ownerID {
		return domainerrors.ErrForbidden
	}

	return nil
}
