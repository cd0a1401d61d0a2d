package impl

import (
	"context"
	"testing"
	"time"

	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/domain/repository"
	"orla/internal/domain/service"
	mockRepo "orla/internal/mocks/repository"
	mockSvc "orla/internal/mocks/service"
	"orla/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(
		txManager,
		userRepo,
		authRepo,
		refreshTokenRepo,
		hasher,
		tokenService,
		newDiscardLogger(),
	)

	return userServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "Ana Souza", user.Name)
					assert.Equal(t, entity.RoleBroker, user.Role)

					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
					assert.Equal(t, input.Email, auth.ProviderUserID)
					assert.Equal(t, "hashed_password", auth.PasswordHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
}

func TestUserService_Register_NameFallsBackToEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "sem-nome@example.com",
		Password: "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, input.Email, user.Name)

					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Name)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "Password123!",
	}
	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}
	user := &entity.User{
		ID:    userID,
		Name:  "Ana Souza",
		Email: input.Email,
		Role:  entity.RoleBroker,
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, input.Email, []string{entity.RoleBroker.String()}).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "refresh_hash", token.TokenHash)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		}).
		Return(nil)
	fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_ExpiredSessionSweepFailureIsIgnored(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "Password123!",
	}
	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}
	user := &entity.User{
		ID:    userID,
		Name:  "Ana Souza",
		Email: input.Email,
		Role:  entity.RoleBroker,
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, input.Email, []string{entity.RoleBroker.String()}).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.refreshTokenRepo.EXPECT().
		DeleteExpiredRefreshTokens(ctx).
		Return(errors.New("database unavailable"))

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nope@example.com", Password: "x"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"}
	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check(input.Password, authRecord.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshTokenInput{RefreshToken: "refresh_token"}
	user := &entity.User{
		ID:    userID,
		Email: "ana@example.com",
		Role:  entity.RoleBroker,
	}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken).
		Return(&service.Claims{UserID: userID, Email: user.Email, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("refresh_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh_hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh_hash"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, user.Email, []string{entity.RoleBroker.String()}).
		Return("new_access_token", "unused_refresh", nil)

	output, err := fx.service.RefreshToken(ctx, input)

	require.NoError(t, err)
	// Only a fresh access token is issued; the refresh token stays in place.
	assert.Equal(t, "new_access_token", output.AccessToken)
}

func TestUserService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RefreshTokenInput{RefreshToken: "garbage"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken).
		Return(nil, errors.New("failed to parse token structure"))

	output, err := fx.service.RefreshToken(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_RevokedSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshTokenInput{RefreshToken: "refresh_token"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken).
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("refresh_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh_hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "refresh_token"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken).
		Return(&service.Claims{Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("refresh_hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh_hash").Return(nil)

	err := fx.service.Logout(ctx, input)

	assert.NoError(t, err)
}

func TestUserService_Logout_IdempotentWhenSessionGone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "refresh_token"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken).
		Return(&service.Claims{Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("refresh_hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "refresh_hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, input)

	assert.NoError(t, err)
}

func TestUserService_Logout_InvalidTokenStillDeletes(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "expired_token"}

	fx.tokenService.EXPECT().
		ValidateToken(input.RefreshToken).
		Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("expired_hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "expired_hash").Return(nil)

	err := fx.service.Logout(ctx, input)

	assert.NoError(t, err)
}
