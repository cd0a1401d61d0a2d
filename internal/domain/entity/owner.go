package entity

import (
	"time"

	"github.com/google/uuid"
)

// Owner is the property owner (proprietário) a listing can reference.
// Owners are a separate collection from user profiles: an owner is a customer
// of the agency, not an operator of the admin panel.
type Owner struct {
	ID        uuid.UUID // The unique identifier for the owner.
	Name      string    // Full name, used to order the owner selector.
	Email     string    // Contact email, optional.
	Phone     string    // Contact phone, optional.
	Document  string    // Tax or identity document number, optional.
	CreatedAt time.Time
	UpdatedAt time.Time
}
