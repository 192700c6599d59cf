package impl

import (
	"context"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	txManager   *mockRepo.MockTransactionManager
	commentRepo *mockRepo.MockCommentRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewCommentService(CommentServiceParams{
		TxManager:   txManager,
		CommentRepo: commentRepo,
		Publisher:   publisher,
		Logger:      discardLogger(),
	})

	return commentServiceFixtures{
		service:     service,
		txManager:   txManager,
		commentRepo: commentRepo,
		publisher:   publisher,
	}
}

func TestCommentService_ListByPost(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	postID := uuid.New()
	comments := []*entity.Comment{{ID: uuid.New(), PostID: postID}}
	fx.commentRepo.EXPECT().ListByPost(ctx, postID).Return(comments, nil)

	got, err := fx.service.ListByPost(ctx, postID)

	require.NoError(t, err)
	assert.Equal(t, comments, got)
}

func TestCommentService_Create_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	authorID := uuid.New()
	postID := uuid.New()
	commentID := uuid.New()

	populated := &entity.Comment{
		ID:       commentID,
		AuthorID: authorID,
		PostID:   postID,
		Content:  "Bom post!",
		Author:   &entity.UserSummary{ID: authorID, Name: "Lucas"},
		Post:     &entity.PostSummary{ID: postID, Title: "Hello"},
	}

	repos := expectTransaction(t, fx.txManager)
	repos.users.EXPECT().FindByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
	repos.posts.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID}, nil)
	repos.comments.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Comment) bool {
			return c.AuthorID == authorID && c.PostID == postID && c.Content == "Bom post!"
		})).
		Run(func(_ context.Context, c *entity.Comment) { c.ID = commentID }).
		Return(nil)
	repos.posts.EXPECT().AddComment(ctx, postID, commentID).Return(nil)
	repos.comments.EXPECT().FindByID(ctx, commentID).Return(populated, nil)
	fx.publisher.EXPECT().
		PublishContentEvent(ctx, mock.MatchedBy(func(e *service.ContentEvent) bool {
			return e.Type == service.EventCommentCreated && e.EntityID == commentID.String()
		})).
		Return(nil)

	got, err := fx.service.Create(ctx, usecase.CreateCommentInput{
		PostID:   postID,
		Content:  " Bom post! ",
		CallerID: authorID,
	})

	require.NoError(t, err)
	assert.Equal(t, populated, got)
	assert.Equal(t, "Lucas", got.Author.Name)
}

func TestCommentService_Create_MissingPost(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	authorID := uuid.New()
	postID := uuid.New()

	repos := expectTransaction(t, fx.txManager)
	repos.users.EXPECT().FindByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
	repos.posts.EXPECT().FindByID(ctx, postID).Return(nil, domainerrors.ErrPostNotFound)

	_, err := fx.service.Create(ctx, usecase.CreateCommentInput{PostID: postID, Content: "oi", AuthorID: authorID})

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestCommentService_Create_Validation(t *testing.T) {
	fx := createTestCommentService(t)

	_, err := fx.service.Create(context.Background(), usecase.CreateCommentInput{PostID: uuid.New(), CallerID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Create(context.Background(), usecase.CreateCommentInput{Content: "oi", CallerID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCommentService_Delete_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	authorID := uuid.New()
	comment := &entity.Comment{ID: uuid.New(), AuthorID: authorID, PostID: uuid.New()}

	repos := expectTransaction(t, fx.txManager)
	repos.comments.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
	repos.comments.EXPECT().Delete(ctx, comment.ID).Return(nil)
	repos.posts.EXPECT().RemoveComment(ctx, comment.PostID, comment.ID).Return(nil)
	fx.publisher.EXPECT().PublishContentEvent(ctx, mock.Anything).Return(nil)

	got, err := fx.service.Delete(ctx, authorID, comment.ID)

	require.NoError(t, err)
	assert.Equal(t, comment, got)
}

func TestCommentService_Delete_MissingIsNoop(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	id := uuid.New()

	repos := expectTransaction(t, fx.txManager)
	repos.comments.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrCommentNotFound)

	got, err := fx.service.Delete(ctx, uuid.New(), id)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCommentService_Delete_NonOwner(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	comment := &entity.Comment{ID: uuid.New(), AuthorID: uuid.New(), PostID: uuid.New()}

	repos := expectTransaction(t, fx.txManager)
	repos.comments.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)

	_, err := fx.service.Delete(ctx, uuid.New(), comment.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
