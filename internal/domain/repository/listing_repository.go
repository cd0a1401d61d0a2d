// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"orla/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a listing does not exist in the store.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the standard operations for property listing persistence.
type ListingRepository interface {
	// Create persists a new listing.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a single listing by its storage ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindAll retrieves every listing ordered by created_at descending.
	// No pagination: the admin panel operates on the full in-memory set.
	FindAll(ctx context.Context) ([]*entity.Listing, error)

	// UpdateStatus changes only the status column of one listing.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error

	// Delete removes a listing permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
