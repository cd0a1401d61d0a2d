package impl

import (
	"testing"

	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListingPayload_MinimalForm(t *testing.T) {
	createdBy := uuid.New()
	form := &usecase.ListingForm{Title: "  Apto 2 quartos  "}

	listing, err := buildListingPayload(form, "IMV-1736951112345", createdBy)

	require.NoError(t, err)
	assert.Equal(t, "IMV-1736951112345", listing.Code)
	assert.Equal(t, "Apto 2 quartos", listing.Title)
	assert.Equal(t, entity.StatusAvailable, listing.Status)
	assert.Equal(t, createdBy, listing.CreatedBy)

	// Blank optionals map to nil, never to empty strings or zeros.
	assert.Nil(t, listing.Kind)
	assert.Nil(t, listing.City)
	assert.Nil(t, listing.Price)
	assert.Nil(t, listing.Rooms)
	assert.Nil(t, listing.OwnerID)
	assert.Nil(t, listing.ListerID)
}

func TestBuildListingPayload_BlankTitleRejected(t *testing.T) {
	form := &usecase.ListingForm{
		Title: "   ",
		Price: "not-a-number", // never evaluated; the title check fires first
	}

	listing, err := buildListingPayload(form, "IMV-1", uuid.New())

	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrTitleRequired))
}

func TestBuildListingPayload_FullForm(t *testing.T) {
	ownerID := uuid.New()
	listerID := uuid.New()
	form := &usecase.ListingForm{
		Title:             "Casa com quintal",
		Kind:              "casa",
		City:              " Florianópolis ",
		District:          "Centro",
		Address:           "Rua das Flores, 100",
		Price:             "450000.50",
		CommissionPercent: "5",
		AreaTotal:         "360.25",
		Rooms:             "3",
		Bathrooms:         "2",
		Parking:           "1",
		Description:       "Ampla casa",
		InternalNotes:     "Chaves na imobiliária",
		Status:            "Reserved",
		OwnerID:           ownerID.String(),
		ListerID:          listerID.String(),
	}

	listing, err := buildListingPayload(form, "IMV-2", uuid.New())

	require.NoError(t, err)
	assert.Equal(t, entity.StatusReserved, listing.Status)
	require.NotNil(t, listing.City)
	assert.Equal(t, "Florianópolis", *listing.City)
	require.NotNil(t, listing.Price)
	assert.InDelta(t, 450000.50, *listing.Price, 0.001)
	require.NotNil(t, listing.CommissionPercent)
	assert.InDelta(t, 5.0, *listing.CommissionPercent, 0.001)
	require.NotNil(t, listing.Rooms)
	assert.Equal(t, 3, *listing.Rooms)
	require.NotNil(t, listing.OwnerID)
	assert.Equal(t, ownerID, *listing.OwnerID)
	require.NotNil(t, listing.ListerID)
	assert.Equal(t, listerID, *listing.ListerID)

	// Untouched optionals stay nil.
	assert.Nil(t, listing.SalePrice)
	assert.Nil(t, listing.AreaBuilt)
}

func TestBuildListingPayload_InvalidNumericNamesField(t *testing.T) {
	tests := []struct {
		name  string
		form  usecase.ListingForm
		field string
	}{
		{"price", usecase.ListingForm{Title: "T", Price: "abc"}, "price"},
		{"sale_price", usecase.ListingForm{Title: "T", SalePrice: "12,5"}, "sale_price"},
		{"rooms", usecase.ListingForm{Title: "T", Rooms: "3.5"}, "rooms"},
		{"parking", usecase.ListingForm{Title: "T", Parking: "muitos"}, "parking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := buildListingPayload(&tt.form, "IMV-3", uuid.New())

			assert.Nil(t, listing)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.field)
		})
	}
}

func TestBuildListingPayload_NegativeValuesRejected(t *testing.T) {
	tests := []struct {
		name  string
		form  usecase.ListingForm
		field string
	}{
		{"price", usecase.ListingForm{Title: "T", Price: "-350000"}, "price"},
		{"sale_price", usecase.ListingForm{Title: "T", SalePrice: "-1"}, "sale_price"},
		{"commission_percent", usecase.ListingForm{Title: "T", CommissionPercent: "-5"}, "commission_percent"},
		{"area_total", usecase.ListingForm{Title: "T", AreaTotal: "-120.5"}, "area_total"},
		{"rooms", usecase.ListingForm{Title: "T", Rooms: "-2"}, "rooms"},
		{"parking", usecase.ListingForm{Title: "T", Parking: "-1"}, "parking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := buildListingPayload(&tt.form, "IMV-6", uuid.New())

			assert.Nil(t, listing)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.field)
		})
	}
}

func TestBuildListingPayload_ZeroIsNotNegative(t *testing.T) {
	form := &usecase.ListingForm{Title: "T", Price: "0", Rooms: "0"}

	listing, err := buildListingPayload(form, "IMV-7", uuid.New())

	require.NoError(t, err)
	require.NotNil(t, listing.Price)
	assert.Zero(t, *listing.Price)
	require.NotNil(t, listing.Rooms)
	assert.Zero(t, *listing.Rooms)
}

func TestBuildListingPayload_InvalidReferenceRejected(t *testing.T) {
	form := &usecase.ListingForm{
		Title:   "T",
		OwnerID: "42", // numeric ids are not identity references
	}

	listing, err := buildListingPayload(form, "IMV-4", uuid.New())

	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBuildListingPayload_InvalidStatusRejected(t *testing.T) {
	form := &usecase.ListingForm{Title: "T", Status: "archived"}

	listing, err := buildListingPayload(form, "IMV-5", uuid.New())

	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}
