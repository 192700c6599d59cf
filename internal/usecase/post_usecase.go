package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines a new post. AuthorID defaults to CallerID when omitted.
type CreatePostInput struct {
	Title    string `validate:"required"`
	Content  string `validate:"required"`
	AuthorID uuid.UUID
	CallerID uuid.UUID
}

// UpdatePostInput carries optional title and content changes. Empty values are ignored.
type UpdatePostInput struct {
	CallerID uuid.UUID
	Title    *string
	Content  *string
}

// PostUsecase defines the posts resource. A zero callerID skips ownership checks.
type PostUsecase interface {
	List(ctx context.Context) ([]*entity.Post, error)
	Create(ctx context.Context, input CreatePostInput) (*entity.Post, error)
	Read(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}
