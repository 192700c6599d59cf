package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to create a user through the users resource.
type CreateUserInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// UpdateUserInput carries optional profile changes. Nil fields are left untouched.
type UpdateUserInput struct {
	CallerID uuid.UUID
	Name     *string
	Email    *string `validate:"omitempty,email"`
	Password *string
}

// UserWithToken is returned when a user is created or updated, along with a fresh access token.
type UserWithToken struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the users resource. A zero callerID skips ownership checks.
type UserUsecase interface {
	List(ctx context.Context) ([]*entity.User, error)
	Read(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, input CreateUserInput) (*UserWithToken, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserWithToken, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}
