package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Post is an article written by a single user.
type Post struct {
	ID         uuid.UUID
	Title      string
	Content    string
	AuthorID   uuid.UUID   // Immutable after creation.
	CommentIDs []uuid.UUID // Back-reference to the comments attached to this post.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AddComment records a comment id on the post. Adding an id twice is a no-op.
func (p *Post) AddComment(commentID uuid.UUID) {
	if slices.Contains(p.CommentIDs, commentID) {
		return
	}
	p.CommentIDs = append(p.CommentIDs, commentID)
}

// RemoveComment drops every occurrence of commentID from the post's back-references.
func (p *Post) RemoveComment(commentID uuid.UUID) {
	p.CommentIDs = slices.DeleteFunc(p.CommentIDs, func(id uuid.UUID) bool { return id == commentID })
}

// PostSummary is the projection of a post embedded in comments.
type PostSummary struct {
	ID    uuid.UUID
	Title string
}

// Summary projects the post onto its id and title.
func (p *Post) Summary() PostSummary {
	return PostSummary{ID: p.ID, Title: p.Title}
}
