package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	mockUsecase "blog/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func runAuthenticate(t *testing.T, authUC *mockUsecase.MockAuthUsecase, header string) (*httptest.ResponseRecorder, *service.Claims, bool) {
	t.Helper()

	m := NewAuthMiddleware(AuthMiddlewareParams{
		AuthUC: authUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var seen *service.Claims
	called := false
	err := m.Authenticate(func(c echo.Context) error {
		called = true
		seen = deliverycontext.GetClaimsFromContext(c.Request().Context())
		assert.Equal(t, seen, deliverycontext.GetClaims(c))

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec, seen, called
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAuthenticate_ValidToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	claims := &service.Claims{UserID: uuid.New(), Email: "lucas@example.com", Type: service.TokenTypeAccess}
	authUC.EXPECT().VerifyToken(mock.Anything, "good").Return(claims, nil)

	rec, seen, called := runAuthenticate(t, authUC, "Bearer good")

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, claims, seen)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().VerifyToken(mock.Anything, "").Return(nil, domainerrors.ErrMissingToken)

	rec, _, called := runAuthenticate(t, authUC, "")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, rec))
}

func TestAuthenticate_NonBearerScheme(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().VerifyToken(mock.Anything, "").Return(nil, domainerrors.ErrMissingToken)

	rec, _, called := runAuthenticate(t, authUC, "Basic dXNlcjpwYXNz")

	assert.False(t, called)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, rec))
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().VerifyToken(mock.Anything, "forged").Return(nil, domainerrors.ErrInvalidToken)

	rec, _, called := runAuthenticate(t, authUC, "Bearer forged")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
}

func TestAuthenticate_UnexpectedErrorIsInvalidToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().VerifyToken(mock.Anything, "x").Return(nil, errors.New("boom"))

	rec, _, _ := runAuthenticate(t, authUC, "Bearer x")

	assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
}
