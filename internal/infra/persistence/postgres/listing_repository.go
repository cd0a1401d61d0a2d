// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/domain/repository"
	"orla/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the domain.ListingRepository interface using GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("listing code already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("owner or lister reference does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}
		// For other database errors, return a generic database error
		// carrying the store's message verbatim for the staff-facing UI.
		return domainerrors.NewDatabaseExecuteError(err, err.Error())
	}

	// Update the entity with generated values
	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID retrieves a single listing by its storage ID.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

// FindAll retrieves every listing ordered by created_at descending.
func (repo *listingRepository) FindAll(ctx context.Context) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// UpdateStatus changes only the status column of one listing.
func (repo *listingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidStatus.WrapMessage("status rejected by store constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, result.Error.Error())
	}

	// If no rows were affected, it means the listing was not found.
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// Delete removes a listing permanently.
func (repo *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ListingModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:                data.ID,
		Code:              data.Code,
		Title:             data.Title,
		Kind:              data.Kind,
		Status:            entity.ListingStatus(data.Status),
		City:              data.City,
		District:          data.District,
		Address:           data.Address,
		Price:             data.Price,
		SalePrice:         data.SalePrice,
		CommissionPercent: data.CommissionPercent,
		AreaTotal:         data.AreaTotal,
		AreaBuilt:         data.AreaBuilt,
		Rooms:             data.Rooms,
		Bathrooms:         data.Bathrooms,
		Parking:           data.Parking,
		Description:       data.Description,
		InternalNotes:     data.InternalNotes,
		OwnerID:           data.OwnerID,
		ListerID:          data.ListerID,
		CreatedBy:         data.CreatedBy,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel for persistence.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:                data.ID,
		Code:              data.Code,
		Title:             data.Title,
		Kind:              data.Kind,
		Status:            data.Status.String(),
		City:              data.City,
		District:          data.District,
		Address:           data.Address,
		Price:             data.Price,
		SalePrice:         data.SalePrice,
		CommissionPercent: data.CommissionPercent,
		AreaTotal:         data.AreaTotal,
		AreaBuilt:         data.AreaBuilt,
		Rooms:             data.Rooms,
		Bathrooms:         data.Bathrooms,
		Parking:           data.Parking,
		Description:       data.Description,
		InternalNotes:     data.InternalNotes,
		OwnerID:           data.OwnerID,
		ListerID:          data.ListerID,
		CreatedBy:         data.CreatedBy,
	}
}
