package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListingStatus_BlankDefaultsToAvailable(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		status, ok := ParseListingStatus(raw)

		assert.True(t, ok)
		assert.Equal(t, StatusAvailable, status)
	}
}

func TestParseListingStatus_CaseInsensitive(t *testing.T) {
	tests := []struct {
		raw  string
		want ListingStatus
	}{
		{"available", StatusAvailable},
		{"Reserved", StatusReserved},
		{"SOLD", StatusSold},
		{"  Inactive  ", StatusInactive},
	}

	for _, tt := range tests {
		status, ok := ParseListingStatus(tt.raw)

		assert.True(t, ok, "raw %q", tt.raw)
		assert.Equal(t, tt.want, status)
	}
}

func TestParseListingStatus_InvalidValue(t *testing.T) {
	for _, raw := range []string{"pending", "vendido", "avail able"} {
		status, ok := ParseListingStatus(raw)

		assert.False(t, ok, "raw %q", raw)
		assert.Equal(t, ListingStatus(""), status)
	}
}

func TestListingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusAvailable.IsValid())
	assert.True(t, StatusReserved.IsValid())
	assert.True(t, StatusSold.IsValid())
	assert.True(t, StatusInactive.IsValid())
	assert.False(t, ListingStatus("archived").IsValid())
	assert.False(t, ListingStatus("").IsValid())
}
