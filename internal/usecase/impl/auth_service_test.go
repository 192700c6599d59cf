package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/infra/auth"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "  Lucas  ",
		Email:    "Lucas@Example.com",
		Password: "secret",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "lucas@example.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Equal(t, "Lucas", output.User.Name)
	assert.Equal(t, "lucas@example.com", output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{Email: "lucas@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Lucas",
		Email:    "not-an-email",
		Password: "secret",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "lucas@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "lucas@example.com"}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Lucas",
		Email:    "lucas@example.com",
		Password: "secret",
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "lucas@example.com").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("", errors.New("cost too high"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Lucas",
		Email:    "lucas@example.com",
		Password: "secret",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Register_LongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasherWithCost(4),
		TokenService: tokenService,
		Logger:       discardLogger(),
	})

	ctx := context.Background()
	password := strings.Repeat("p", 73)

	var stored *entity.User
	userRepo.EXPECT().FindByEmail(ctx, "lucas@example.com").Return(nil, domainerrors.ErrUserNotFound).Once()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			stored = user
		}).
		Return(nil)

	output, err := svc.Register(ctx, usecase.RegisterInput{Name: "Lucas", Email: "lucas@example.com", Password: password})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, output.User.PasswordHash)

	userRepo.EXPECT().FindByEmail(ctx, "lucas@example.com").Return(stored, nil).Once()
	tokenService.EXPECT().TokenTTL().Return(time.Hour)
	tokenService.EXPECT().
		IssueToken(service.TokenSubject{UserID: stored.ID, Email: stored.Email}, time.Hour).
		Return("signed.jwt.token", nil)

	login, err := svc.Login(ctx, usecase.LoginInput{Email: "lucas@example.com", Password: password})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", login.Token)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Lucas", Email: "lucas@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "lucas@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.tokenService.EXPECT().TokenTTL().Return(time.Hour)
	fx.tokenService.EXPECT().
		IssueToken(service.TokenSubject{UserID: user.ID, Email: user.Email}, time.Hour).
		Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "LUCAS@example.com ", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, loginSuccessMessage, output.Message)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, domainerrors.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "lucas@example.com", PasswordHash: "hashed"}
	fx.userRepo.EXPECT().FindByEmail(ctx, "lucas@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "lucas@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingPassword(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "lucas@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbErr := errors.New("connection refused")
	fx.userRepo.EXPECT().FindByEmail(ctx, "lucas@example.com").Return(nil, dbErr)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "lucas@example.com", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_VerifyToken(t *testing.T) {
	fx := createTestAuthService(t)

	claims := &service.Claims{UserID: uuid.New(), Email: "lucas@example.com", Type: service.TokenTypeAccess}
	fx.tokenService.EXPECT().ValidateToken("good").Return(claims, nil)
	fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, domainerrors.ErrInvalidToken)

	got, err := fx.service.VerifyToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, claims, got)

	_, err = fx.service.VerifyToken(context.Background(), "bad")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)

	output := fx.service.Logout(context.Background())

	assert.Equal(t, logoutSuccessMessage, output.Message)
}
