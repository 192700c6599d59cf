package postgres

import (
	"context"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) Record(ctx context.Context, activity *entity.Activity) (bool, error) {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	if activity.ReceivedAt.IsZero() {
		activity.ReceivedAt = time.Now().UTC()
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "message_id"}}, DoNothing: true}).
		Create(fromActivityDomain(activity))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record activity")
	}

	return result.RowsAffected > 0, nil
}

func (repo *activityRepository) ListByEntity(ctx context.Context, entityID string) ([]*entity.Activity, error) {
	var activityMs []model.ActivityModel
	err := repo.db.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Order("occurred_at ASC").
		Find(&activityMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(activityMs))
	for i := range activityMs {
		activities = append(activities, toActivityDomain(&activityMs[i]))
	}

	return activities, nil
}

func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	return &entity.Activity{
		ID:         data.ID,
		MessageID:  data.MessageID,
		Type:       data.Type,
		EntityID:   data.EntityID,
		ActorID:    data.ActorID,
		RequestID:  data.RequestID,
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}
}

func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	return &model.ActivityModel{
		ID:         data.ID,
		MessageID:  data.MessageID,
		Type:       data.Type,
		EntityID:   data.EntityID,
		ActorID:    data.ActorID,
		RequestID:  data.RequestID,
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}
}
