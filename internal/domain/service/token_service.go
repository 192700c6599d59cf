package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess is the only token type this service issues.
const TokenTypeAccess = "access"

// TokenSubject identifies who a token is issued to.
type TokenSubject struct {
	UserID uuid.UUID
	Email  string
}

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken signs an access token bound to subject that expires after ttl.
	IssueToken(subject TokenSubject, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	// An empty string yields ErrMissingToken, every other failure ErrInvalidToken.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured lifetime for access tokens.
	TokenTTL() time.Duration
}
