package entity

import (
	"strings"

	"github.com/google/uuid"
)

// FilterListings derives the visible subset of an already-loaded listing set.
//
// It is a pure function over its inputs: it never re-fetches, preserves the
// input ordering, and applying it twice with the same arguments yields the
// same result as applying it once. Both predicates compose with logical AND.
//
// The status predicate is a case-insensitive equality check, active only when
// statusFilter is non-blank. The free-text predicate lower-cases the trimmed
// needle and matches it as a substring of a per-listing blob built from code,
// title, kind, city, district, address, description, status and the resolved
// lister display name. Nil fields are skipped when building the blob.
func FilterListings(items []*Listing, freeText, statusFilter string, listerNames map[uuid.UUID]string) []*Listing {
	status := strings.ToLower(strings.TrimSpace(statusFilter))
	needle := strings.ToLower(strings.TrimSpace(freeText))

	if status == "" && needle == "" {
		return items
	}

	filtered := make([]*Listing, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if status != "" && strings.ToLower(item.Status.String()) != status {
			continue
		}
		if needle != "" && !strings.Contains(searchBlob(item, listerNames), needle) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

// searchBlob concatenates the non-blank searchable fields of a listing with
// single spaces, lower-cased. Absent fields contribute nothing.
func searchBlob(item *Listing, listerNames map[uuid.UUID]string) string {
	parts := make([]string, 0, 9)

	appendPart := func(value string) {
		if value != "" {
			parts = append(parts, value)
		}
	}
	appendOptional := func(value *string) {
		if value != nil {
			appendPart(*value)
		}
	}

	appendPart(item.Code)
	appendPart(item.Title)
	appendOptional(item.Kind)
	appendOptional(item.City)
	appendOptional(item.District)
	appendOptional(item.Address)
	appendOptional(item.Description)
	appendPart(item.Status.String())
	if item.ListerID != nil {
		appendPart(listerNames[*item.ListerID])
	}

	return strings.ToLower(strings.Join(parts, " "))
}
