package service

import (
	"context"
	"time"
)

// ContentEventType names a change to blog content.
type ContentEventType string

const (
	EventUserDeleted    ContentEventType = "user.deleted"
	EventPostCreated    ContentEventType = "post.created"
	EventPostDeleted    ContentEventType = "post.deleted"
	EventCommentCreated ContentEventType = "comment.created"
	EventCommentDeleted ContentEventType = "comment.deleted"
)

// ContentEvent is published after a content change has been committed.
type ContentEvent struct {
	Type       ContentEventType `json:"type"`
	EntityID   string           `json:"entity_id"`
	ActorID    string           `json:"actor_id,omitempty"`
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContentEvent publishes a content event for downstream consumers
	PublishContentEvent(ctx context.Context, event *ContentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
