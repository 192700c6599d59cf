package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	events    eventEmitter
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		events:    eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every post, newest first.
func (srv *postService) List(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// Create inserts the post and records it on the author in one transaction.
func (srv *postService) Create(ctx context.Context, input usecase.CreatePostInput) (*entity.Post, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	authorID, err := resolveAuthor(input.AuthorID, input.CallerID)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: authorID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		postRepo := repoFactory.NewPostRepository()

		if _, err := userRepo.FindByID(ctx, authorID); err != nil {
			return err
		}
		if err := postRepo.Create(ctx, post); err != nil {
			return err
		}

		return userRepo.AddPost(ctx, authorID, post.ID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute post creation transaction")
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Any("authorID", authorID))
	srv.events.emit(ctx, service.EventPostCreated, post.ID, authorID)

	return post, nil
}

func (srv *postService) Read(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	return srv.postRepo.FindByID(ctx, id)
}

// Update replaces title and content when non-empty values are provided. The author never changes.
func (srv *postService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwner(input.CallerID, post.AuthorID); err != nil {
		return nil, err
	}

	title, content := trimmed(input.Title), trimmed(input.Content)
	if title == "" && content == "" {
		return post, nil
	}
	if title != "" {
		post.Title = title
	}
	if content != "" {
		post.Content = content
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to update post")
	}

	return post, nil
}

// Delete removes the post, its comments and the author's reference to it in one transaction.
func (srv *postService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		postRepo := repoFactory.NewPostRepository()
		commentRepo := repoFactory.NewCommentRepository()

		post, err := postRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := checkOwner(callerID, post.AuthorID); err != nil {
			return err
		}

		if _, err := commentRepo.DeleteByPost(ctx, id); err != nil {
			return err
		}
		if err := postRepo.Delete(ctx, id); err != nil {
			return err
		}

		err = userRepo.RemovePost(ctx, post.AuthorID, id)
		if err != nil && !errors.Is(err, domainerrors.ErrUserNotFound) {
			return err
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute post deletion transaction")
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", id))
	srv.events.emit(ctx, service.EventPostDeleted, id, callerID)

	return nil
}
