// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"orla/internal/domain/entity"
)

// CreateOwnerInput defines the data required to register a property owner.
type CreateOwnerInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

// CatalogUsecase serves the selector collections of the admin form:
// property owners (proprietários) and listing brokers (captadores).
type CatalogUsecase interface {
	// ListOwners returns every owner ordered by name.
	ListOwners(ctx context.Context) ([]*entity.Owner, error)

	// ListBrokers returns every user profile ordered by name.
	ListBrokers(ctx context.Context) ([]*entity.User, error)

	// CreateOwner registers a new property owner.
	CreateOwner(ctx context.Context, input *CreateOwnerInput) (*entity.Owner, error)
}
