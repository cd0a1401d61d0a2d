// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "orla/internal/delivery/context"
	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/domain/repository"
	"orla/internal/domain/service"
	"orla/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	codeGen     service.CodeGenerator
	logger      *slog.Logger
}

// NewListingService is the constructor for listingService. It receives all dependencies as interfaces.
func NewListingService(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	codeGen service.CodeGenerator,
	logger *slog.Logger,
) usecase.ListingUsecase {
	return &listingService{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		codeGen:     codeGen,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create maps the form to a typed payload and inserts the listing.
func (srv *listingService) Create(ctx context.Context, input *usecase.CreateListingInput) (*usecase.CreateListingOutput, error) {
	// 1. Generate the business code at payload-construction time.
	code := srv.codeGen.Generate()

	// 2. Validate and map the all-string form. Failures here never reach the store.
	listing, err := buildListingPayload(&input.Form, code, input.CreatedBy)
	if err != nil {
		srv.log(ctx).Warn("Listing form rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to map listing form")
	}

	// 3. Persist. Single operation, direct repository instance.
	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		srv.log(ctx).Error("Failed to create listing", slog.String("code", code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created", slog.String("code", code), slog.Any("listingID", listing.ID))

	return &usecase.CreateListingOutput{
		Code:    listing.Code,
		Listing: listing,
	}, nil
}

// Get loads one listing and resolves its lister display name.
func (srv *listingService) Get(ctx context.Context, input *usecase.GetListingInput) (*usecase.ListingView, error) {
	listing, err := srv.listingRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}
		srv.log(ctx).Error("Failed to load listing", slog.Any("listingID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load listing")
	}

	view := &usecase.ListingView{Listing: listing}
	if listing.ListerID != nil {
		names := srv.resolveListerNames(ctx, []*entity.Listing{listing})
		view.ListerName = names[*listing.ListerID]
	}

	return view, nil
}

// List fetches the full record set newest first, resolves lister display
// names in one batched lookup and applies the in-memory filter.
func (srv *listingService) List(ctx context.Context, input *usecase.ListListingsInput) (*usecase.ListListingsOutput, error) {
	listings, err := srv.listingRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load listings", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load listings")
	}

	listerNames := srv.resolveListerNames(ctx, listings)

	filtered := entity.FilterListings(listings, input.FreeText, input.Status, listerNames)

	items := make([]*usecase.ListingView, 0, len(filtered))
	for _, listing := range filtered {
		view := &usecase.ListingView{Listing: listing}
		if listing.ListerID != nil {
			view.ListerName = listerNames[*listing.ListerID]
		}
		items = append(items, view)
	}

	return &usecase.ListListingsOutput{Items: items}, nil
}

// resolveListerNames collects the distinct lister references of the loaded
// set and resolves them to display names with a single "id in (...)" fetch.
// A failed lookup degrades to missing names rather than failing the load.
func (srv *listingService) resolveListerNames(ctx context.Context, listings []*entity.Listing) map[uuid.UUID]string {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, listing := range listings {
		if listing.ListerID == nil {
			continue
		}
		if _, ok := seen[*listing.ListerID]; ok {
			continue
		}
		seen[*listing.ListerID] = struct{}{}
		ids = append(ids, *listing.ListerID)
	}

	if len(ids) == 0 {
		return map[uuid.UUID]string{}
	}

	users, err := srv.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve lister names", slog.Int("refs", len(ids)), slog.Any("error", err))

		return map[uuid.UUID]string{}
	}

	names := make(map[uuid.UUID]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name
	}

	return names
}

// SetStatus updates only the status of one listing.
func (srv *listingService) SetStatus(ctx context.Context, input *usecase.SetListingStatusInput) error {
	// The selector constrains the value client-side, but reject out-of-enum
	// values here as well before any store call. Blank is not a transition.
	if strings.TrimSpace(input.Status) == "" {
		return domainerrors.ErrInvalidStatus.WithDetails("status must not be blank")
	}
	status, ok := entity.ParseListingStatus(input.Status)
	if !ok {
		return domainerrors.ErrInvalidStatus.WithDetails("status " + input.Status + " is not one of available, reserved, sold, inactive")
	}

	if err := srv.listingRepo.UpdateStatus(ctx, input.ID, status); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, "listing not found for status update")
		}
		srv.log(ctx).Error("Failed to update listing status", slog.Any("listingID", input.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update listing status")
	}

	srv.log(ctx).Info("Listing status updated", slog.Any("listingID", input.ID), slog.String("status", status.String()))

	return nil
}

// Delete removes one listing after an explicit confirmation.
func (srv *listingService) Delete(ctx context.Context, input *usecase.DeleteListingInput) error {
	// Irreversible-action confirmation travels with the request. Without it
	// the store is never reached.
	if !input.Confirmed {
		return domainerrors.ErrDeleteNotConfirmed.WithDetails("delete requires confirm=true")
	}

	if err := srv.listingRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, "listing not found for delete")
		}
		srv.log(ctx).Error("Failed to delete listing", slog.Any("listingID", input.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete listing")
	}

	srv.log(ctx).Info("Listing deleted", slog.Any("listingID", input.ID))

	return nil
}
