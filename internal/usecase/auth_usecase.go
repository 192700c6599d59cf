// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user. Callers render only the public fields.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput carries the access token issued after a successful login.
type LoginOutput struct {
	Message string
	User    *entity.User
	Token   string
}

// LogoutOutput acknowledges a logout. Tokens are stateless, so nothing is revoked server side.
type LogoutOutput struct {
	Message string
}

// AuthUsecase defines registration, login and token verification.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	VerifyToken(ctx context.Context, token string) (*service.Claims, error)
	Logout(ctx context.Context) *LogoutOutput
}
