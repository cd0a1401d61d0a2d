// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/domain/repository"
	"orla/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownerRepository implements the domain.OwnerRepository interface using GORM.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// Create persists a new property owner.
func (repo *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(ownerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required owner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, err.Error())
	}

	owner.ID = ownerM.ID
	owner.CreatedAt = ownerM.CreatedAt
	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

// ListAll retrieves every owner ordered by name.
func (repo *ownerRepository) ListAll(ctx context.Context) ([]*entity.Owner, error) {
	var ownerModels []*model.OwnerModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&ownerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list owners")
	}

	owners := make([]*entity.Owner, 0, len(ownerModels))
	for _, ownerM := range ownerModels {
		owners = append(owners, toOwnerDomain(ownerM))
	}

	return owners, nil
}

// --- Mapper Functions ---

// toOwnerDomain converts a GORM OwnerModel to a domain Owner entity.
func toOwnerDomain(data *model.OwnerModel) *entity.Owner {
	if data == nil {
		return nil
	}

	return &entity.Owner{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Document:  data.Document,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromOwnerDomain converts a domain Owner entity to a GORM OwnerModel.
func fromOwnerDomain(data *entity.Owner) *model.OwnerModel {
	if data == nil {
		return nil
	}

	return &model.OwnerModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Phone:    data.Phone,
		Document: data.Document,
	}
}
