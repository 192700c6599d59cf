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

type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	events      eventEmitter
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		events:      eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByPost returns the comments of a post with author and post summaries populated.
func (srv *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// Create inserts the comment and then appends its id to the parent post, atomically.
func (srv *commentService) Create(ctx context.Context, input usecase.CreateCommentInput) (*entity.Comment, error) {
	input.Content = strings.TrimSpace(input.Content)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	authorID, err := resolveAuthor(input.AuthorID, input.CallerID)
	if err != nil {
		return nil, err
	}

	var created *entity.Comment
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		postRepo := repoFactory.NewPostRepository()
		commentRepo := repoFactory.NewCommentRepository()

		if _, err := userRepo.FindByID(ctx, authorID); err != nil {
			return err
		}
		if _, err := postRepo.FindByID(ctx, input.PostID); err != nil {
			return err
		}

		comment := &entity.Comment{
			AuthorID: authorID,
			PostID:   input.PostID,
			Content:  input.Content,
		}
		if err := commentRepo.Create(ctx, comment); err != nil {
			return err
		}
		if err := postRepo.AddComment(ctx, input.PostID, comment.ID); err != nil {
			return err
		}

		populated, err := commentRepo.FindByID(ctx, comment.ID)
		if err != nil {
			return err
		}
		created = populated

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute comment creation transaction")
	}

	srv.log(ctx).Info("Comment created", slog.Any("commentID", created.ID), slog.Any("postID", created.PostID))
	srv.events.emit(ctx, service.EventCommentCreated, created.ID, authorID)

	return created, nil
}

func (srv *commentService) Read(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	return srv.commentRepo.FindByID(ctx, id)
}

// Delete removes the comment and pulls its id from the parent post. A missing comment is a no-op.
func (srv *commentService) Delete(ctx context.Context, callerID, id uuid.UUID) (*entity.Comment, error) {
	var deleted *entity.Comment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()
		commentRepo := repoFactory.NewCommentRepository()

		comment, err := commentRepo.FindByID(ctx, id)
		if errors.Is(err, domainerrors.ErrCommentNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := checkOwner(callerID, comment.AuthorID); err != nil {
			return err
		}

		if err := commentRepo.Delete(ctx, id); err != nil {
			return err
		}
		err = postRepo.RemoveComment(ctx, comment.PostID, id)
		if err != nil && !errors.Is(err, domainerrors.ErrPostNotFound) {
			return err
		}
		deleted = comment

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute comment deletion transaction")
	}
	if deleted == nil {
		srv.log(ctx).Debug("Comment already absent", slog.Any("commentID", id))

		return nil, nil
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("commentID", id), slog.Any("postID", deleted.PostID))
	srv.events.emit(ctx, service.EventCommentDeleted, id, callerID)

	return deleted, nil
}
