// Package middleware contains the echo middleware specific to the API delivery.
package middleware

import (
	"log/slog"
	"strings"

	"blog/internal/delivery/api/response"
	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware gates protected routes behind a valid access token. It never touches storage.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Authenticate validates the bearer token and stores its claims on both the echo
// context and the request context before calling next.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// A header without the Bearer prefix counts as no token at all.
		token, _ := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)

		ctx := c.Request().Context()
		claims, err := m.authUC.VerifyToken(ctx, strings.TrimSpace(token))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Rejected request token",
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)

			return response.HandleAppError(c, asTokenError(err))
		}

		deliverycontext.SetClaims(c, claims)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithClaims(ctx, claims)))

		return next(c)
	}
}

// asTokenError keeps MISSING_TOKEN and INVALID_TOKEN apart and folds anything else into INVALID_TOKEN.
func asTokenError(err error) error {
	if errors.Is(err, domainerrors.ErrMissingToken) {
		return domainerrors.ErrMissingToken
	}

	return domainerrors.ErrInvalidToken
}
