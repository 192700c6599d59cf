package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one content event as received by the event worker.
// MessageID is the broker's delivery id and makes redelivery idempotent.
type Activity struct {
	ID         uuid.UUID
	MessageID  string
	Type       string
	EntityID   string
	ActorID    string
	RequestID  string
	OccurredAt time.Time
	ReceivedAt time.Time
}
