package postgres

import (
	"context"
	"log/slog"

	"blog/internal/domain/lifecycle"
	"blog/internal/errors"
	"blog/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// SchemaParams defines what the schema check needs.
type SchemaParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Logger *slog.Logger
}

// RequireContentSchema fails startup unless the users, posts and comments tables exist.
func RequireContentSchema(params SchemaParams) {
	requireTables(params, &model.UserModel{}, &model.PostModel{}, &model.CommentModel{})
}

// RequireActivitySchema fails startup unless the activities table exists.
func RequireActivitySchema(params SchemaParams) {
	requireTables(params, &model.ActivityModel{})
}

type tabler interface {
	TableName() string
}

func requireTables(params SchemaParams, models ...tabler) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := checkTables(ctx, params.DB, models...); err != nil {
				return err
			}
			params.Logger.Debug("Database schema verified", slog.Int("tables", len(models)))

			return nil
		},
	})
}

// checkTables reports the first model whose table is missing. Run cmd/migrate up to create them.
func checkTables(ctx context.Context, db *gorm.DB, models ...tabler) error {
	migrator := db.WithContext(ctx).Migrator()
	for _, m := range models {
		if !migrator.HasTable(m.TableName()) {
			return errors.Errorf("table %q is missing, run the migrations first", m.TableName())
		}
	}

	return nil
}
