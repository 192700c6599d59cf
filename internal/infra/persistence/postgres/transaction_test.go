package postgres

import (
	"context"
	"regexp"
	"testing"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestTransactionManager_Commit(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE id = $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().Delete(context.Background(), userID)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)
	stepErr := errors.New("step failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return stepErr
	})
	assert.ErrorIs(t, err, stepErr)
	assert.False(t, errors.Is(err, domainerrors.ErrPartialFailure))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackFailureIsPartialFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)
	stepErr := domainerrors.ErrPostNotFound

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection lost"))

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return stepErr
	})
	assert.True(t, errors.Is(err, domainerrors.ErrPartialFailure))
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PARTIAL_FAILURE", appErr.ErrorCode())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_BeginAndCommitFailures(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		err := NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
			t.Fatal("callback must not run")
			return nil
		})
		assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
	})

	t.Run("commit", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err := NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
			return nil
		})
		assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db, mock := setupMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}
