package entity

import (
	"time"

	"github.com/google/uuid"
)

// Listing is one property record managed through the admin panel.
//
// Optional fields are pointers: a nil pointer means the field was left blank
// on the form and is stored as NULL, never as an empty string or zero. Code is
// the human-readable business identifier, distinct from the storage-assigned
// primary key; it is generated once at payload construction and never changes.
type Listing struct {
	ID    uuid.UUID     // Storage-assigned primary key.
	Code  string        // Generated business code, e.g. "IMV-1736951112345". Immutable.
	Title string        // Required headline, e.g. "Apto 2 quartos". Never blank once persisted.
	Kind  *string       // Property kind, e.g. "apartamento", "casa".
	Status ListingStatus // Commercial situation. Defaults to StatusAvailable.

	City     *string // City of the property.
	District *string // Neighborhood (bairro).
	Address  *string // Street address.

	Price             *float64 // Asking price.
	SalePrice         *float64 // Final negotiated price, filled when sold.
	CommissionPercent *float64 // Agency commission over the sale.
	AreaTotal         *float64 // Total lot area in square meters.
	AreaBuilt         *float64 // Built area in square meters.
	Rooms             *int     // Bedroom count.
	Bathrooms         *int     // Bathroom count.
	Parking           *int     // Parking spot count.

	Description   *string // Public description.
	InternalNotes *string // Notes visible only inside the agency.

	OwnerID  *uuid.UUID // Reference to the Owner collection, optional.
	ListerID *uuid.UUID // Reference to the user profile that captures the listing, optional.

	CreatedBy uuid.UUID // Identity that inserted the record.
	CreatedAt time.Time // Server-assigned; canonical list ordering key, newest first.
	UpdatedAt time.Time
}
