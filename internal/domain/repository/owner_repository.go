// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"orla/internal/domain/entity"
)

// ErrOwnerNotFound is returned when a property owner is not found.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerRepository defines the standard operations for property owner persistence.
type OwnerRepository interface {
	// Create persists a new owner.
	Create(ctx context.Context, owner *entity.Owner) error

	// ListAll retrieves every owner ordered by name, for the owner selector.
	ListAll(ctx context.Context) ([]*entity.Owner, error)
}
