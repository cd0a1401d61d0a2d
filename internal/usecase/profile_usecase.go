// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"orla/internal/domain/entity"

	"github.com/google/uuid"
)

// ResolveProfileInput identifies the authenticated session whose profile is wanted.
type ResolveProfileInput struct {
	UserID uuid.UUID // Identity reference from the access token.
	Email  string    // Contact email from the access token, used for the synthesized fallback.
}

// UpdateProfileInput carries the editable profile fields. The identity comes
// from the session, never from the request body.
type UpdateProfileInput struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"-"`
	Name   string    `json:"name" validate:"required"`
}

// ResolvedProfile is the always-usable result of a profile lookup.
// When Synthesized is true the profile row did not exist (or the lookup
// failed) and Profile is a stand-in built from the session email; Notice
// carries the advisory text to show without blocking the page.
type ResolvedProfile struct {
	Profile     *entity.User
	Synthesized bool
	Notice      string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// ResolveProfile maps an authenticated identity to a display profile.
	// It never fails: lookup errors degrade to a synthesized profile with an
	// advisory notice, because listing functionality does not strictly
	// require a profile row.
	ResolveProfile(ctx context.Context, input *ResolveProfileInput) *ResolvedProfile

	// UpdateProfile saves the caller's display profile. When the profile row
	// is missing (the synthesized case) the first save creates it, completing
	// the registration the advisory notice asks for.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
}
