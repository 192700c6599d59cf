package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply left by a user on a post.
type Comment struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	PostID    uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated on list and read; nil when the referenced row is gone.
	Author *UserSummary
	Post   *PostSummary
}
