package impl

import (
	"fmt"
	"strconv"
	"strings"

	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/usecase"

	"github.com/google/uuid"
)

// buildListingPayload converts the all-string form state into a typed
// persistence payload. Rules, applied uniformly: everything is trimmed; a
// blank optional field becomes nil, never an empty string; a populated
// numeric field that does not parse surfaces a validation error naming the
// field; a blank title fails before any other processing; a blank status
// defaults to available. The business code is generated by the caller, not
// supplied by the user.
func buildListingPayload(form *usecase.ListingForm, code string, createdBy uuid.UUID) (*entity.Listing, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return nil, domainerrors.ErrTitleRequired.WithDetails("title must not be blank")
	}

	status, ok := entity.ParseListingStatus(form.Status)
	if !ok {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(fmt.Sprintf("status %q is not one of available, reserved, sold, inactive", form.Status))
	}

	listing := &entity.Listing{
		Code:          code,
		Title:         title,
		Status:        status,
		Kind:          optionalString(form.Kind),
		City:          optionalString(form.City),
		District:      optionalString(form.District),
		Address:       optionalString(form.Address),
		Description:   optionalString(form.Description),
		InternalNotes: optionalString(form.InternalNotes),
		CreatedBy:     createdBy,
	}

	var err error
	if listing.Price, err = optionalFloat(form.Price, "price"); err != nil {
		return nil, err
	}
	if listing.SalePrice, err = optionalFloat(form.SalePrice, "sale_price"); err != nil {
		return nil, err
	}
	if listing.CommissionPercent, err = optionalFloat(form.CommissionPercent, "commission_percent"); err != nil {
		return nil, err
	}
	if listing.AreaTotal, err = optionalFloat(form.AreaTotal, "area_total"); err != nil {
		return nil, err
	}
	if listing.AreaBuilt, err = optionalFloat(form.AreaBuilt, "area_built"); err != nil {
		return nil, err
	}
	if listing.Rooms, err = optionalInt(form.Rooms, "rooms"); err != nil {
		return nil, err
	}
	if listing.Bathrooms, err = optionalInt(form.Bathrooms, "bathrooms"); err != nil {
		return nil, err
	}
	if listing.Parking, err = optionalInt(form.Parking, "parking"); err != nil {
		return nil, err
	}
	if listing.OwnerID, err = optionalReference(form.OwnerID, "owner_id"); err != nil {
		return nil, err
	}
	if listing.ListerID, err = optionalReference(form.ListerID, "lister_id"); err != nil {
		return nil, err
	}

	return listing, nil
}

// optionalString trims the raw value and maps blank to nil.
func optionalString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// optionalFloat parses a populated decimal field, mapping blank to nil and a
// parse failure to a validation error naming the field. Prices, commissions
// and areas are magnitudes; negative values are rejected.
func optionalFloat(raw, field string) (*float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("field %q must be a number, got %q", field, trimmed))
	}
	if value < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("field %q must not be negative, got %q", field, trimmed))
	}

	return &value, nil
}

// optionalInt parses a populated integer field, mapping blank to nil and a
// parse failure to a validation error naming the field. Counts are
// magnitudes; negative values are rejected.
func optionalInt(raw, field string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("field %q must be an integer, got %q", field, trimmed))
	}
	if value < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("field %q must not be negative, got %q", field, trimmed))
	}

	return &value, nil
}

// optionalReference parses a populated selector field as an opaque identity
// reference. Owner and lister selectors share one representation: UUIDs,
// never numeric ids or denormalized names.
func optionalReference(raw, field string) (*uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	id, err := uuid.Parse(trimmed)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("field %q must be an identity reference, got %q", field, trimmed))
	}

	return &id, nil
}
