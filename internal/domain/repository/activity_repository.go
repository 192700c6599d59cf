package repository

import (
	"context"

	"blog/internal/domain/entity"
)

// ActivityRepository stores the content events consumed by the event worker.
type ActivityRepository interface {
	// Record inserts the activity. It reports false without error when an activity
	// with the same MessageID was already stored.
	Record(ctx context.Context, activity *entity.Activity) (bool, error)

	// ListByEntity returns the activities of one entity, oldest first.
	ListByEntity(ctx context.Context, entityID string) ([]*entity.Activity, error)
}
