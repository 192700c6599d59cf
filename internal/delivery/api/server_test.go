package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog/config"
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router"
	"blog/internal/delivery/api/router/handler"
	"blog/internal/infra/auth"
	"blog/internal/infra/persistence/postgres"
	"blog/internal/infra/persistence/sqlitetest"
	mockService "blog/internal/mocks/service"
	"blog/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test-secret"},
		Auth:      &config.AuthConfig{BcryptCost: 4, TokenTTL: time.Hour},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	db := sqlitetest.Open(t)
	txManager := postgres.NewTransactionManager(db)
	userRepo := postgres.NewUserRepository(db)

	hasher := auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishContentEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo: userRepo, Hasher: hasher, TokenService: tokens, Logger: logger,
	})
	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager: txManager, UserRepo: userRepo, Hasher: hasher, TokenService: tokens, Publisher: publisher, Logger: logger,
	})
	postUC := impl.NewPostService(impl.PostServiceParams{
		TxManager: txManager, PostRepo: postgres.NewPostRepository(db), Publisher: publisher, Logger: logger,
	})
	commentUC := impl.NewCommentService(impl.CommentServiceParams{
		TxManager: txManager, CommentRepo: postgres.NewCommentRepository(db), Publisher: publisher, Logger: logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		PostHandler:    handler.NewPostHandler(handler.PostHandlerParams{PostUC: postUC, Logger: logger}),
		CommentHandler: handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: commentUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: authUC, Logger: logger}),
	})

	return &testServer{t: t, echo: e}
}

func (s *testServer) do(method, path, token string, body any) (int, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec.Code, env
}

func TestBlogScenario(t *testing.T) {
	srv := newTestServer(t)

	// register
	status, env := srv.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Lucas", "email": "lucas@example.com", "password": "123",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.NotContains(t, string(env.Data), "password")
	var identity handler.UserIdentity
	require.NoError(t, json.Unmarshal(env.Data, &identity))
	assert.Equal(t, "lucas@example.com", identity.Email)

	// duplicate registration
	status, env = srv.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Lucas", "email": "lucas@example.com", "password": "123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE_EMAIL", env.Error.Code)

	// wrong password
	status, env = srv.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "lucas@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	// login
	status, env = srv.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "lucas@example.com", "password": "123",
	})
	require.Equal(t, http.StatusOK, status)
	var login handler.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, identity.ID, login.User.ID)

	// writes need a token
	status, env = srv.do(http.MethodPost, "/api/v1/posts", "", map[string]string{"title": "Hi", "content": "there"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	status, env = srv.do(http.MethodPost, "/api/v1/posts", "forged", map[string]string{"title": "Hi", "content": "there"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)

	// empty title
	status, env = srv.do(http.MethodPost, "/api/v1/posts", login.Token, map[string]string{"title": "", "content": "there"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	// create post
	status, env = srv.do(http.MethodPost, "/api/v1/posts", login.Token, map[string]string{"title": "Hi", "content": "there"})
	require.Equal(t, http.StatusCreated, status)
	var post handler.PostResponse
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, identity.ID, post.Author)

	// comment on it
	status, env = srv.do(http.MethodPost, "/api/v1/comments", login.Token, map[string]string{
		"postId": post.ID.String(), "content": "first",
	})
	require.Equal(t, http.StatusCreated, status)
	var comment handler.CommentResponse
	require.NoError(t, json.Unmarshal(env.Data, &comment))
	require.NotNil(t, comment.Author)
	assert.Equal(t, "Lucas", comment.Author.Name)

	// post back-references the comment
	status, env = srv.do(http.MethodGet, "/api/v1/posts/"+post.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Contains(t, post.Comments, comment.ID)

	status, env = srv.do(http.MethodGet, "/api/v1/comments/"+post.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, status)
	var comments handler.CommentListResponse
	require.NoError(t, json.Unmarshal(env.Data, &comments))
	assert.Len(t, comments.Comments, 1)

	// user back-references the post
	status, env = srv.do(http.MethodGet, "/api/v1/users/"+identity.ID.String(), login.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var user handler.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, []uuid.UUID{post.ID}, user.Posts)

	// deleting the user cascades
	status, _ = srv.do(http.MethodDelete, "/api/v1/users/"+identity.ID.String(), login.Token, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, env = srv.do(http.MethodGet, "/api/v1/posts/"+post.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "POST_NOT_FOUND", env.Error.Code)

	status, env = srv.do(http.MethodGet, "/api/v1/comments/"+post.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &comments))
	assert.Empty(t, comments.Comments)
}

func TestHealthRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	srv := newTestServer(t)

	status, env := srv.do(http.MethodGet, "/api/v1/nowhere", "", nil)

	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
