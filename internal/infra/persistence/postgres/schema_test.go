package postgres

import (
	"context"
	"testing"

	"blog/internal/infra/persistence/model"
	"blog/internal/infra/persistence/sqlitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestCheckTables(t *testing.T) {
	db := sqlitetest.Open(t)

	err := checkTables(context.Background(), db, &model.UserModel{}, &model.PostModel{}, &model.CommentModel{}, &model.ActivityModel{})
	assert.NoError(t, err)
}

func TestCheckTables_Missing(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	err = checkTables(context.Background(), db, &model.ActivityModel{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"activities"`)
}
