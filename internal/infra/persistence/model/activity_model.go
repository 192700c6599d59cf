package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table.
type ActivityModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MessageID  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Type       string    `gorm:"type:varchar(64);not null"`
	EntityID   string    `gorm:"type:varchar(64);not null;index"`
	ActorID    string    `gorm:"type:varchar(64)"`
	RequestID  string    `gorm:"type:varchar(128)"`
	OccurredAt time.Time `gorm:"not null"`
	ReceivedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
