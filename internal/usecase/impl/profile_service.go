// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "orla/internal/delivery/context"
	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/domain/repository"
	"orla/internal/usecase"

	"github.com/pkg/errors"
)

// Advisory notices surfaced alongside a synthesized profile. They inform, never block.
const (
	noticeProfileMissing = "Cadastro incompleto. Complete seu cadastro para personalizar o painel."
	noticeProfileFailed  = "Não foi possível carregar seu cadastro: "
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveProfile maps the authenticated identity to a display profile.
// Three outcomes, all non-fatal: found, synthesized because the row is
// missing, or synthesized because the lookup failed. The page stays usable
// in every case; the notice carries the degradation reason.
func (srv *profileService) ResolveProfile(ctx context.Context, input *usecase.ResolveProfileInput) *usecase.ResolvedProfile {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err == nil {
		return &usecase.ResolvedProfile{Profile: user}
	}

	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("Profile row missing, synthesizing", slog.Any("userID", input.UserID))

		return &usecase.ResolvedProfile{
			Profile:     srv.synthesizeProfile(input),
			Synthesized: true,
			Notice:      noticeProfileMissing,
		}
	}

	srv.log(ctx).Warn("Profile lookup failed, synthesizing", slog.Any("userID", input.UserID), slog.Any("error", err))

	return &usecase.ResolvedProfile{
		Profile:     srv.synthesizeProfile(input),
		Synthesized: true,
		Notice:      noticeProfileFailed + err.Error(),
	}
}

// UpdateProfile saves the caller's display profile. A missing row is created
// with the session identity, so the synthesized-profile state heals on the
// first save.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be blank")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Failed to load profile for update", slog.Any("userID", input.UserID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to load profile for update")
		}

		user = &entity.User{
			ID:    input.UserID,
			Email: input.Email,
			Name:  name,
			Role:  entity.RoleBroker,
		}
		if createErr := srv.userRepo.Create(ctx, user); createErr != nil {
			srv.log(ctx).Error("Failed to create profile", slog.Any("userID", input.UserID), slog.Any("error", createErr))

			return nil, errors.Wrap(createErr, "failed to create profile")
		}
		srv.log(ctx).Info("Profile created on first save", slog.Any("userID", user.ID))

		return user, nil
	}

	user.Name = name
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}
	srv.log(ctx).Info("Profile updated", slog.Any("userID", user.ID))

	return user, nil
}

// synthesizeProfile builds the stand-in profile from the session email.
func (srv *profileService) synthesizeProfile(input *usecase.ResolveProfileInput) *entity.User {
	return &entity.User{
		ID:    input.UserID,
		Email: input.Email,
		Name:  input.Email,
		Role:  entity.RoleBroker,
	}
}
