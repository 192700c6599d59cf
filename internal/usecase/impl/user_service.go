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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	accounts     accountCreator
	events       eventEmitter
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		accounts:     accountCreator{userRepo: params.UserRepo, hasher: params.Hasher},
		events:       eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:       params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) Read(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.userRepo.FindByID(ctx, id)
}

// Create registers a user and returns it with an access token, so the client is signed in immediately.
func (srv *userService) Create(ctx context.Context, input usecase.CreateUserInput) (*usecase.UserWithToken, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := srv.accounts.create(ctx, srv.log(ctx), input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	return srv.withToken(user)
}

// Update applies the provided profile fields and re-issues the token, since the email claim may change.
func (srv *userService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*usecase.UserWithToken, error) {
	if err := checkOwner(input.CallerID, id); err != nil {
		return nil, err
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		input.Email = &email
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := trimmed(input.Name); name != "" {
		user.Name = name
	}

	if email := trimmed(input.Email); email != "" && email != user.Email {
		existing, err := srv.userRepo.FindByEmail(ctx, email)
		switch {
		case err == nil && existing.ID != user.ID:
			return nil, domainerrors.ErrDuplicateEmail
		case err != nil && !errors.Is(err, domainerrors.ErrUserNotFound):
			return nil, errors.Wrap(err, "failed to check existing email")
		}
		user.Email = email
	}

	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = hashedPassword
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", user.ID))

	return srv.withToken(user)
}

// Delete removes the user together with everything that references it:
// comments the user wrote anywhere, the user's posts and the comments on them.
func (srv *userService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if err := checkOwner(callerID, id); err != nil {
		return err
	}

	var removedPosts int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		postRepo := repoFactory.NewPostRepository()
		commentRepo := repoFactory.NewCommentRepository()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			return err
		}

		authored, err := commentRepo.ListByAuthor(ctx, id)
		if err != nil {
			return err
		}
		for _, comment := range authored {
			if err := commentRepo.Delete(ctx, comment.ID); err != nil {
				return err
			}
			if err := postRepo.RemoveComment(ctx, comment.PostID, comment.ID); err != nil && !errors.Is(err, domainerrors.ErrPostNotFound) {
				return err
			}
		}

		posts, err := postRepo.ListByAuthor(ctx, id)
		if err != nil {
			return err
		}
		for _, post := range posts {
			if _, err := commentRepo.DeleteByPost(ctx, post.ID); err != nil {
				return err
			}
			if err := postRepo.Delete(ctx, post.ID); err != nil {
				return err
			}
		}
		removedPosts = len(posts)

		return userRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id), slog.Int("posts", removedPosts))
	srv.events.emit(ctx, service.EventUserDeleted, id, callerID)

	return nil
}

func (srv *userService) withToken(user *entity.User) (*usecase.UserWithToken, error) {
	token, err := srv.tokenService.IssueToken(service.TokenSubject{UserID: user.ID, Email: user.Email}, srv.tokenService.TokenTTL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.UserWithToken{User: user, Token: token}, nil
}
