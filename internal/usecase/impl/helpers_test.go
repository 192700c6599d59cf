package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txRepos are the transaction-scoped repositories handed out by the mocked factory.
type txRepos struct {
	users    *mockRepo.MockUserRepository
	posts    *mockRepo.MockPostRepository
	comments *mockRepo.MockCommentRepository
}

// expectTransaction makes txManager run the callback once against fresh repository mocks.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) txRepos {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	repos := txRepos{
		users:    mockRepo.NewMockUserRepository(t),
		posts:    mockRepo.NewMockPostRepository(t),
		comments: mockRepo.NewMockCommentRepository(t),
	}

	factory.EXPECT().NewUserRepository().Return(repos.users).Maybe()
	factory.EXPECT().NewPostRepository().Return(repos.posts).Maybe()
	factory.EXPECT().NewCommentRepository().Return(repos.comments).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()

	return repos
}
