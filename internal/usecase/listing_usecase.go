// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"orla/internal/domain/entity"

	"github.com/google/uuid"
)

// ListingForm is the typed form state for creating a listing.
// Every field arrives as a string, exactly as typed: mapping to a persistence
// payload (trimming, blank-to-null, numeric coercion, status defaulting,
// reference parsing) happens in one place in the listing service, never in
// handlers.
type ListingForm struct {
	Title             string `json:"title"`
	Kind              string `json:"kind"`
	City              string `json:"city"`
	District          string `json:"district"`
	Address           string `json:"address"`
	Price             string `json:"price"`
	SalePrice         string `json:"sale_price"`
	CommissionPercent string `json:"commission_percent"`
	AreaTotal         string `json:"area_total"`
	AreaBuilt         string `json:"area_built"`
	Rooms             string `json:"rooms"`
	Bathrooms         string `json:"bathrooms"`
	Parking           string `json:"parking"`
	Description       string `json:"description"`
	InternalNotes     string `json:"internal_notes"`
	Status            string `json:"status"`
	OwnerID           string `json:"owner_id"`
	ListerID          string `json:"lister_id"`
}

// CreateListingInput couples the form with the identity performing the insert.
type CreateListingInput struct {
	Form      ListingForm
	CreatedBy uuid.UUID
}

// CreateListingOutput returns the generated business code for user feedback.
type CreateListingOutput struct {
	Code    string
	Listing *entity.Listing
}

// GetListingInput identifies one listing.
type GetListingInput struct {
	ID uuid.UUID
}

// ListListingsInput carries the current filter state.
type ListListingsInput struct {
	FreeText string
	Status   string
}

// ListingView pairs a listing with its resolved lister display name.
// The name is blank when the referenced profile does not exist.
type ListingView struct {
	Listing    *entity.Listing
	ListerName string
}

// ListListingsOutput returns the filtered, ordered listing set.
type ListListingsOutput struct {
	Items []*ListingView
}

// SetListingStatusInput identifies one listing and its new status, as typed.
type SetListingStatusInput struct {
	ID     uuid.UUID
	Status string
}

// DeleteListingInput carries the irreversible-action confirmation with the request.
type DeleteListingInput struct {
	ID        uuid.UUID
	Confirmed bool
}

// ListingUsecase defines the interface for property listing operations.
type ListingUsecase interface {
	// Create validates and maps the form, generates the business code and inserts the listing.
	Create(ctx context.Context, input *CreateListingInput) (*CreateListingOutput, error)

	// Get loads one listing with its resolved lister display name.
	Get(ctx context.Context, input *GetListingInput) (*ListingView, error)

	// List fetches every listing newest first, resolves lister names in one
	// batched lookup and applies the in-memory filter.
	List(ctx context.Context, input *ListListingsInput) (*ListListingsOutput, error)

	// SetStatus updates only the status of one listing. Out-of-enum values
	// are rejected before any store call.
	SetStatus(ctx context.Context, input *SetListingStatusInput) error

	// Delete removes one listing. Confirmed must be true or the store is never reached.
	Delete(ctx context.Context, input *DeleteListingInput) error
}
