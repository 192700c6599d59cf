package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository defines persistence for comments. Reads populate the author and post summaries.
type CommentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByPost returns the comments of a post, oldest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// ListByAuthor returns every comment written by authorID, across all posts.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Comment, error)

	Create(ctx context.Context, comment *entity.Comment) error

	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByPost removes every comment attached to postID and reports how many were removed.
	DeleteByPost(ctx context.Context, postID uuid.UUID) (int64, error)
}
