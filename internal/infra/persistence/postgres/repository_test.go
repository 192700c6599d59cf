package postgres

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repoFixtures struct {
	db       *gorm.DB
	users    *userRepository
	posts    *postRepository
	comments *commentRepository
}

func newRepoFixtures(t *testing.T) *repoFixtures {
	db := sqlitetest.Open(t)

	return &repoFixtures{
		db:       db,
		users:    NewUserRepository(db).(*userRepository),
		posts:    NewPostRepository(db).(*postRepository),
		comments: NewCommentRepository(db).(*commentRepository),
	}
}

func (fx *repoFixtures) seedUser(t *testing.T, email string) *entity.User {
	t.Helper()
	user := &entity.User{Name: "Lucas", Email: email, PasswordHash: "hash"}
	require.NoError(t, fx.users.Create(context.Background(), user))

	return user
}

func (fx *repoFixtures) seedPost(t *testing.T, authorID uuid.UUID, title string) *entity.Post {
	t.Helper()
	post := &entity.Post{Title: title, Content: "content", AuthorID: authorID}
	require.NoError(t, fx.posts.Create(context.Background(), post))

	return post
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	user := fx.seedUser(t, "lucas@example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := fx.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "lucas@example.com", byID.Email)
	assert.Equal(t, "hash", byID.PasswordHash)
	assert.NotNil(t, byID.PostIDs)

	byEmail, err := fx.users.FindByEmail(ctx, "lucas@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = fx.users.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, err = fx.users.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	fx := newRepoFixtures(t)
	fx.seedUser(t, "lucas@example.com")

	err := fx.users.Create(context.Background(), &entity.User{Name: "Other", Email: "lucas@example.com", PasswordHash: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))

	other := fx.seedUser(t, "other@example.com")
	other.Email = "lucas@example.com"
	err = fx.users.Update(context.Background(), other)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()
	user := fx.seedUser(t, "lucas@example.com")

	user.Name = "Lucas Silva"
	user.PasswordHash = "new-hash"
	require.NoError(t, fx.users.Update(ctx, user))

	got, err := fx.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lucas Silva", got.Name)
	assert.Equal(t, "new-hash", got.PasswordHash)

	require.NoError(t, fx.users.Delete(ctx, user.ID))
	assert.True(t, errors.Is(fx.users.Delete(ctx, user.ID), domainerrors.ErrUserNotFound))
	assert.True(t, errors.Is(fx.users.Update(ctx, user), domainerrors.ErrUserNotFound))
}

func TestUserRepository_PostReferences(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()
	user := fx.seedUser(t, "lucas@example.com")
	first, second := uuid.New(), uuid.New()

	require.NoError(t, fx.users.AddPost(ctx, user.ID, first))
	require.NoError(t, fx.users.AddPost(ctx, user.ID, second))
	require.NoError(t, fx.users.RemovePost(ctx, user.ID, first))

	got, err := fx.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second}, got.PostIDs)

	err = fx.users.AddPost(ctx, uuid.New(), first)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()
	author := fx.seedUser(t, "lucas@example.com")
	other := fx.seedUser(t, "ana@example.com")

	older := &entity.Post{Title: "older", Content: "c", AuthorID: author.ID, CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, fx.posts.Create(ctx, older))
	newer := fx.seedPost(t, author.ID, "newer")
	fx.seedPost(t, other.ID, "someone else")

	all, err := fx.posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "older", all[2].Title)

	mine, err := fx.posts.ListByAuthor(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID)
}

func TestPostRepository_UpdateKeepsAuthor(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()
	author := fx.seedUser(t, "lucas@example.com")
	post := fx.seedPost(t, author.ID, "title")

	post.Title = "changed"
	post.AuthorID = uuid.New()
	require.NoError(t, fx.posts.Update(ctx, post))

	got, err := fx.posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Title)
	assert.Equal(t, author.ID, got.AuthorID)

	require.NoError(t, fx.posts.Delete(ctx, post.ID))
	_, err = fx.posts.FindByID(ctx, post.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
	assert.True(t, errors.Is(fx.posts.Delete(ctx, post.ID), domainerrors.ErrPostNotFound))
}

func TestPostRepository_CommentReferences(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()
	author := fx.seedUser(t, "lucas@example.com")
	post := fx.seedPost(t, author.ID, "title")
	commentID := uuid.New()

	require.NoError(t, fx.posts.AddComment(ctx, post.ID, commentID))
	require.NoError(t, fx.posts.AddComment(ctx, post.ID, commentID))

	got, err := fx.posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{commentID}, got.CommentIDs)

	require.NoError(t, fx.posts.RemoveComment(ctx, post.ID, commentID))
	got, err = fx.posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CommentIDs)

	err = fx.posts.AddComment(ctx, uuid.New(), commentID)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestCommentRepository_PopulatesSummaries(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()
	author := fx.seedUser(t, "lucas@example.com")
	post := fx.seedPost(t, author.ID, "Hello")

	comment := &entity.Comment{AuthorID: author.ID, PostID: post.ID, Content: "nice"}
	require.NoError(t, fx.comments.Create(ctx, comment))

	got, err := fx.comments.FindByID(ctx, comment.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Author)
	require.NotNil(t, got.Post)
	assert.Equal(t, entity.UserSummary{ID: author.ID, Name: "Lucas", Email: "lucas@example.com"}, *got.Author)
	assert.Equal(t, entity.PostSummary{ID: post.ID, Title: "Hello"}, *got.Post)

	list, err := fx.comments.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "nice", list[0].Content)

	byAuthor, err := fx.comments.ListByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 1)

	empty, err := fx.comments.ListByPost(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCommentRepository_Delete(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()
	author := fx.seedUser(t, "lucas@example.com")
	post := fx.seedPost(t, author.ID, "Hello")

	for range 3 {
		require.NoError(t, fx.comments.Create(ctx, &entity.Comment{AuthorID: author.ID, PostID: post.ID, Content: "c"}))
	}
	single := &entity.Comment{AuthorID: author.ID, PostID: post.ID, Content: "single"}
	require.NoError(t, fx.comments.Create(ctx, single))

	require.NoError(t, fx.comments.Delete(ctx, single.ID))
	assert.True(t, errors.Is(fx.comments.Delete(ctx, single.ID), domainerrors.ErrCommentNotFound))

	removed, err := fx.comments.DeleteByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	_, err = fx.comments.FindByID(ctx, single.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestRepositories_UpdateKeepsConcurrentReferences(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()
	author := fx.seedUser(t, "lucas@example.com")
	post := fx.seedPost(t, author.ID, "title")

	stalePost, err := fx.posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	staleUser, err := fx.users.FindByID(ctx, author.ID)
	require.NoError(t, err)

	commentID, postID := uuid.New(), uuid.New()
	require.NoError(t, fx.posts.AddComment(ctx, post.ID, commentID))
	require.NoError(t, fx.users.AddPost(ctx, author.ID, postID))

	stalePost.Title = "new title"
	require.NoError(t, fx.posts.Update(ctx, stalePost))
	staleUser.Name = "Lucas Silva"
	require.NoError(t, fx.users.Update(ctx, staleUser))

	gotPost, err := fx.posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "new title", gotPost.Title)
	assert.Equal(t, []uuid.UUID{commentID}, gotPost.CommentIDs)

	gotUser, err := fx.users.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lucas Silva", gotUser.Name)
	assert.Equal(t, []uuid.UUID{postID}, gotUser.PostIDs)
}
