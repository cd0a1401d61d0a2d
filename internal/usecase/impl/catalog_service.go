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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	ownerRepo repository.OwnerRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	ownerRepo repository.OwnerRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		ownerRepo: ownerRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOwners returns every property owner ordered by name.
func (srv *catalogService) ListOwners(ctx context.Context) ([]*entity.Owner, error) {
	owners, err := srv.ownerRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load owners", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load owners")
	}

	return owners, nil
}

// ListBrokers returns every user profile ordered by name. Any account can be
// assigned as a listing's broker, so the selector is fed from the full roster.
func (srv *catalogService) ListBrokers(ctx context.Context) ([]*entity.User, error) {
	brokers, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load brokers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load brokers")
	}

	return brokers, nil
}

// CreateOwner registers a new property owner.
func (srv *catalogService) CreateOwner(ctx context.Context, input *usecase.CreateOwnerInput) (*entity.Owner, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("owner name must not be blank")
	}

	owner := &entity.Owner{
		Name:     name,
		Email:    strings.TrimSpace(input.Email),
		Phone:    strings.TrimSpace(input.Phone),
		Document: strings.TrimSpace(input.Document),
	}

	if err := srv.ownerRepo.Create(ctx, owner); err != nil {
		srv.log(ctx).Error("Failed to create owner", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create owner")
	}

	srv.log(ctx).Info("Owner created", slog.Any("ownerID", owner.ID))

	return owner, nil
}
