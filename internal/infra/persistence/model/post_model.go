package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title      string      `gorm:"type:varchar(255);not null"`
	Content    string      `gorm:"type:text;not null"`
	AuthorID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	CommentIDs []uuid.UUID `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt  time.Time   `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
