// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is an account that can author posts and comments.
type User struct {
	ID           uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Name         string      // The user's display name.
	Email        string      // Unique login identifier.
	PasswordHash string      // bcrypt hash of the password. Never rendered to clients.
	PostIDs      []uuid.UUID // Back-reference to the posts this user authored.
	CreatedAt    time.Time   // Timestamp of when this user account was created.
	UpdatedAt    time.Time   // Timestamp of the last modification to this user's data.
}

// AddPost records a post id on the user. Adding an id twice is a no-op.
func (u *User) AddPost(postID uuid.UUID) {
	if slices.Contains(u.PostIDs, postID) {
		return
	}
	u.PostIDs = append(u.PostIDs, postID)
}

// RemovePost drops every occurrence of postID from the user's back-references.
func (u *User) RemovePost(postID uuid.UUID) {
	u.PostIDs = slices.DeleteFunc(u.PostIDs, func(id uuid.UUID) bool { return id == postID })
}

// UserSummary is the public projection of a user embedded in other resources.
type UserSummary struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Summary projects the user onto its public fields.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
