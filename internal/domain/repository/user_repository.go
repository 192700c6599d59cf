// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
// Lookups that miss return domainerrors.ErrUserNotFound; a taken email returns domainerrors.ErrDuplicateEmail.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies name, email and password hash. Post references are never touched.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user row only. Cascades are orchestrated by the caller.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddPost appends postID to the user's post references.
	AddPost(ctx context.Context, userID, postID uuid.UUID) error

	// RemovePost pulls postID from the user's post references.
	RemovePost(ctx context.Context, userID, postID uuid.UUID) error
}
