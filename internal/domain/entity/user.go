// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the application-level profile of an authenticated person.
// It is distinct from the credential records in Authentication: a user may
// authenticate before their profile row exists, in which case the profile
// resolver synthesizes a stand-in from the session's email.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier for the user.
	Email     string    // The user's contact email, also the login identifier.
	Name      string    // The user's display name, shown as the lister of a property.
	Role      Role      // Display role, e.g. "corretor" or "admin". Advisory only, never an authorization boundary.
	CreatedAt time.Time // Timestamp of when this profile was created.
	UpdatedAt time.Time // Timestamp of the last modification to this profile.
}
