// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"orla/internal/domain/entity"
)

// ErrAuthNotFound is returned when an authentication method is not found.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the standard operations for authentication-related persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method (e.g., email/password).
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)
}
