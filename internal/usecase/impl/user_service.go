// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "orla/internal/delivery/context"
	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/domain/repository"
	"orla/internal/domain/service"
	"orla/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		logger:           logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the credential record and the profile row in one transaction.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		// 1. Reject duplicate email credentials.
		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		// 2. Hash the password.
		hashedPassword, hashErr := srv.hasher.Hash(input.Password)
		if hashErr != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, hashErr.Error())
		}

		// 3. Create the profile row. Display name falls back to the email.
		name := input.Name
		if name == "" {
			name = input.Email
		}
		newUser := &entity.User{
			Name:  name,
			Email: input.Email,
			Role:  entity.RoleBroker,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		// 4. Create the credential record.
		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if createErr := authRepo.CreateAuthentication(ctx, newAuth); createErr != nil {
			return errors.Wrap(createErr, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login exchanges credentials for an access/refresh token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	// 1. Load the credential record.
	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// 2. Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// 3. Load the profile for role and display data.
	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login user")
	}

	// 4. Generate new tokens.
	roles := entity.Roles{loggedInUser.Role}
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Email, roles.ToStrings())
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// 5. Store the refresh token hash.
	if err := srv.storeRefreshToken(ctx, loggedInUser.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	// 6. Opportunistic hygiene: sweep expired sessions on login instead of
	// running a scheduler. A failed sweep only costs storage, never the login.
	if err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx); err != nil {
		srv.log(ctx).Warn("Failed to sweep expired refresh tokens", slog.Any("error", err))
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// RefreshToken handles the process of issuing a new access token using a refresh token.
// The refresh token remains unchanged for security reasons.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	// 1. Verify the refresh token exists in the database.
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Warn("Refresh token not found or expired", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
	}

	// 2. Fetch the user for current role and email claims.
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	// 3. Generate only a new access token; the refresh token remains valid
	// and unchanged, which avoids rotation races across tabs.
	roles := entity.Roles{user.Role}
	newAccessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Email, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken: newAccessToken,
	}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	// Single operation, direct repository instance.
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// The session is already gone; logout is idempotent.
			return nil
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// storeRefreshToken hashes and persists the refresh token for a user session.
func (srv *userService) storeRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	refreshTokenHash := srv.tokenService.HashToken(refreshTokenString)

	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: refreshTokenHash,
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}
