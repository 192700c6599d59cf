package context

import (
	"context"

	"blog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyClaims is the key for storing the authenticated caller's token claims.
const KeyClaims ContextKey = "claims"

// SetClaims stores the verified claims on echo.Context.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
}

// GetClaims returns the verified claims, or nil on unauthenticated routes.
func GetClaims(c echo.Context) *service.Claims {
	if claims, ok := c.Get(string(KeyClaims)).(*service.Claims); ok {
		return claims
	}

	return nil
}

// GetUserID returns the authenticated caller's id, or uuid.Nil when absent.
func GetUserID(c echo.Context) uuid.UUID {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}

	return uuid.Nil
}

// WithClaims returns a new context carrying the claims.
func WithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, KeyClaims, claims)
}

// GetClaimsFromContext extracts claims from standard context.Context.
func GetClaimsFromContext(ctx context.Context) *service.Claims {
	if claims, ok := ctx.Value(KeyClaims).(*service.Claims); ok {
		return claims
	}

	return nil
}
