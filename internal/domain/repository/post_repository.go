package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// PostRepository defines persistence for posts. Missing posts surface as domainerrors.ErrPostNotFound.
type PostRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// List returns all posts, newest first.
	List(ctx context.Context) ([]*entity.Post, error)

	// ListByAuthor returns the posts written by authorID.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	Create(ctx context.Context, post *entity.Post) error

	// Update writes title and content. Author and comment references are never touched.
	Update(ctx context.Context, post *entity.Post) error

	Delete(ctx context.Context, id uuid.UUID) error

	// AddComment appends commentID to the post's comment references.
	AddComment(ctx context.Context, postID, commentID uuid.UUID) error

	// RemoveComment pulls commentID from the post's comment references.
	RemoveComment(ctx context.Context, postID, commentID uuid.UUID) error
}
