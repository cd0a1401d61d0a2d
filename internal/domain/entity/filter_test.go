package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func testListings() ([]*Listing, map[uuid.UUID]string) {
	listerAna := uuid.New()
	listerBruno := uuid.New()

	items := []*Listing{
		{
			Code:     "IMV-1001",
			Title:    "Apto 2 quartos",
			Kind:     strPtr("apartamento"),
			City:     strPtr("Florianópolis"),
			District: strPtr("Centro"),
			Status:   StatusAvailable,
			ListerID: &listerAna,
		},
		{
			Code:        "IMV-1002",
			Title:       "Casa com quintal",
			Kind:        strPtr("casa"),
			City:        strPtr("São José"),
			Description: strPtr("Ampla casa perto da praia"),
			Status:      StatusReserved,
			ListerID:    &listerBruno,
		},
		{
			Code:   "IMV-1003",
			Title:  "Terreno comercial",
			Status: StatusSold,
		},
	}

	names := map[uuid.UUID]string{
		listerAna:   "Ana Souza",
		listerBruno: "Bruno Lima",
	}

	return items, names
}

func TestFilterListings_BothBlankReturnsInputUnchanged(t *testing.T) {
	items, names := testListings()

	result := FilterListings(items, "", "", names)

	// Identity: the very same slice comes back, not a copy.
	assert.Equal(t, len(items), len(result))
	for i := range items {
		assert.Same(t, items[i], result[i])
	}
}

func TestFilterListings_StatusMatchIsCaseInsensitive(t *testing.T) {
	items, names := testListings()

	result := FilterListings(items, "", "RESERVED", names)

	require.Len(t, result, 1)
	assert.Equal(t, "IMV-1002", result[0].Code)
}

func TestFilterListings_FreeTextMatchesCodeTitleAndLocation(t *testing.T) {
	items, names := testListings()

	tests := []struct {
		needle   string
		wantCode string
	}{
		{"imv-1003", "IMV-1003"},
		{"QUINTAL", "IMV-1002"},
		{"centro", "IMV-1001"},
		{"praia", "IMV-1002"},
	}

	for _, tt := range tests {
		result := FilterListings(items, tt.needle, "", names)

		require.Len(t, result, 1, "needle %q", tt.needle)
		assert.Equal(t, tt.wantCode, result[0].Code)
	}
}

func TestFilterListings_FreeTextMatchesResolvedListerName(t *testing.T) {
	items, names := testListings()

	result := FilterListings(items, "ana souza", "", names)

	require.Len(t, result, 1)
	assert.Equal(t, "IMV-1001", result[0].Code)
}

func TestFilterListings_PredicatesComposeWithAnd(t *testing.T) {
	items, names := testListings()

	// "casa" matches IMV-1002 by kind, but the status predicate excludes it.
	result := FilterListings(items, "casa", "available", names)
	assert.Empty(t, result)

	result = FilterListings(items, "casa", "reserved", names)
	require.Len(t, result, 1)
	assert.Equal(t, "IMV-1002", result[0].Code)
}

func TestFilterListings_NilFieldsAreSkippedInBlob(t *testing.T) {
	items, names := testListings()

	// IMV-1003 has no kind, city, district or lister; matching on those
	// fields of other listings must not accidentally include it.
	result := FilterListings(items, "apartamento", "", names)

	require.Len(t, result, 1)
	assert.Equal(t, "IMV-1001", result[0].Code)
}

func TestFilterListings_PreservesInputOrder(t *testing.T) {
	items, names := testListings()

	// "imv" hits every code; ordering must survive untouched.
	result := FilterListings(items, "imv", "", names)

	require.Len(t, result, 3)
	assert.Equal(t, "IMV-1001", result[0].Code)
	assert.Equal(t, "IMV-1002", result[1].Code)
	assert.Equal(t, "IMV-1003", result[2].Code)
}

func TestFilterListings_StatusIsSearchableAsText(t *testing.T) {
	items, names := testListings()

	result := FilterListings(items, "sold", "", names)

	require.Len(t, result, 1)
	assert.Equal(t, "IMV-1003", result[0].Code)
}

func TestFilterListings_SkipsNilItems(t *testing.T) {
	items, names := testListings()
	items = append(items, nil)

	result := FilterListings(items, "imv", "", names)

	assert.Len(t, result, 3)
}
