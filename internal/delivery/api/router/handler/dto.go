package handler

import (
	"time"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public projection of a user. The password hash is never rendered.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Posts     []uuid.UUID `json:"posts"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// UserIdentity is the minimal user view returned by register and login.
type UserIdentity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// UserWithTokenResponse is returned when a user is created or updated.
type UserWithTokenResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// PostResponse renders a post with the ids of its comments.
type PostResponse struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Author    uuid.UUID   `json:"author"`
	Comments  []uuid.UUID `json:"comments"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// CommentAuthor is the populated author of a comment.
type CommentAuthor struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// CommentPost is the populated parent post of a comment.
type CommentPost struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// CommentResponse renders a comment. Author and post are populated when known.
type CommentResponse struct {
	ID        uuid.UUID      `json:"id"`
	AuthorID  uuid.UUID      `json:"authorId"`
	PostID    uuid.UUID      `json:"postId"`
	Author    *CommentAuthor `json:"author,omitempty"`
	Post      *CommentPost   `json:"post,omitempty"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CommentListResponse wraps a post's comments under a "comments" key.
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// MessageResponse carries a human-readable acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

func toUserResponse(user *entity.User) UserResponse {
	posts := user.PostIDs
	if posts == nil {
		posts = []uuid.UUID{}
	}

	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Posts:     posts,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

func toPostResponse(post *entity.Post) PostResponse {
	comments := post.CommentIDs
	if comments == nil {
		comments = []uuid.UUID{}
	}

	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.AuthorID,
		Comments:  comments,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func toPostResponses(posts []*entity.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post))
	}

	return out
}

func toCommentResponse(comment *entity.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        comment.ID,
		AuthorID:  comment.AuthorID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.Author != nil {
		resp.Author = &CommentAuthor{ID: comment.Author.ID, Name: comment.Author.Name, Email: comment.Author.Email}
	}
	if comment.Post != nil {
		resp.Post = &CommentPost{ID: comment.Post.ID, Title: comment.Post.Title}
	}

	return resp
}

func toCommentResponses(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, toCommentResponse(comment))
	}

	return out
}
