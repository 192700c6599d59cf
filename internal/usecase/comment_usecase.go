package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines a new comment. AuthorID defaults to CallerID when omitted.
type CreateCommentInput struct {
	AuthorID uuid.UUID
	PostID   uuid.UUID `validate:"required"`
	Content  string    `validate:"required"`
	CallerID uuid.UUID
}

// CommentUsecase defines the comments resource. A zero callerID skips ownership checks.
type CommentUsecase interface {
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)
	Create(ctx context.Context, input CreateCommentInput) (*entity.Comment, error)
	Read(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// Delete returns the removed comment, or nil without error when no comment has that id.
	Delete(ctx context.Context, callerID, id uuid.UUID) (*entity.Comment, error)
}
