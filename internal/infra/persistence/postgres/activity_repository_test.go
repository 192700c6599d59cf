package postgres

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	"blog/internal/infra/persistence/sqlitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_RecordIsIdempotent(t *testing.T) {
	repo := NewActivityRepository(sqlitetest.Open(t))
	ctx := context.Background()

	occurred := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first := &entity.Activity{MessageID: "msg-1", Type: "post.created", EntityID: "post-1", OccurredAt: occurred}

	inserted, err := repo.Record(ctx, first)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Record(ctx, &entity.Activity{MessageID: "msg-1", Type: "post.created", EntityID: "post-1", OccurredAt: occurred})
	require.NoError(t, err)
	assert.False(t, inserted)

	inserted, err = repo.Record(ctx, &entity.Activity{MessageID: "msg-2", Type: "post.deleted", EntityID: "post-1", OccurredAt: occurred.Add(time.Minute)})
	require.NoError(t, err)
	assert.True(t, inserted)

	activities, err := repo.ListByEntity(ctx, "post-1")
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "post.created", activities[0].Type)
	assert.Equal(t, "post.deleted", activities[1].Type)
	assert.Equal(t, first.ID, activities[0].ID)
	assert.False(t, activities[0].ReceivedAt.IsZero())
}

func TestActivityRepository_ListUnknownEntity(t *testing.T) {
	repo := NewActivityRepository(sqlitetest.Open(t))

	activities, err := repo.ListByEntity(context.Background(), "missing")

	require.NoError(t, err)
	assert.Empty(t, activities)
}
