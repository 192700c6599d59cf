package impl

import (
	"context"
	"log/slog"
	"strings"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"

	"github.com/pkg/errors"
)

// accountCreator holds the steps shared by auth registration and user creation.
type accountCreator struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
}

// create rejects a taken email, hashes the password and persists the user.
func (a accountCreator) create(ctx context.Context, logger *slog.Logger, name, email, password string) (*entity.User, error) {
	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		logger.Warn("Email already registered", slog.String("email", email))

		return nil, domainerrors.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashedPassword, err := a.hasher.Hash(password)
	if err != nil {
		logger.Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := a.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return newUser, nil
}

// normalizeEmail lowercases and trims so uniqueness holds regardless of input casing.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
