package entity

import "strings"

// ListingStatus represents the commercial situation of a property listing.
type ListingStatus string

const (
	// StatusAvailable indicates the property is on the market. Default for new listings.
	StatusAvailable ListingStatus = "available"
	// StatusReserved indicates a buyer has placed a reservation.
	StatusReserved ListingStatus = "reserved"
	// StatusSold indicates the sale has closed.
	StatusSold ListingStatus = "sold"
	// StatusInactive indicates the listing is withdrawn from the market.
	StatusInactive ListingStatus = "inactive"
)

// String returns the string representation of the ListingStatus.
func (s ListingStatus) String() string {
	return string(s)
}

// IsValid checks if the ListingStatus is one of the enumerated values.
func (s ListingStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusInactive:
		return true
	default:
		return false
	}
}

// ParseListingStatus normalizes a raw status string to a ListingStatus.
// A blank input defaults to StatusAvailable; comparison is case-insensitive.
// The boolean reports whether the input mapped to a valid value.
func ParseListingStatus(raw string) (ListingStatus, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return StatusAvailable, true
	}

	status := ListingStatus(strings.ToLower(trimmed))
	if !status.IsValid() {
		return "", false
	}

	return status, true
}
