package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes content events after commit. Failures are logged and swallowed.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (e eventEmitter) emit(ctx context.Context, eventType service.ContentEventType, entityID, actorID uuid.UUID) {
	if e.publisher == nil {
		return
	}

	event := &service.ContentEvent{
		Type:       eventType,
		EntityID:   entityID.String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	}
	if actorID != uuid.Nil {
		event.ActorID = actorID.String()
	}

	if err := e.publisher.PublishContentEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish content event",
			slog.String("type", string(eventType)),
			slog.String("entity_id", event.EntityID),
			slog.Any("error", err),
		)
	}
}
