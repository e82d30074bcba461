package contracts

import (
	"testing"

	"listing-service/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) (*Registry, *ListingValidator) {
	t.Helper()
	registry, err := NewRegistry()
	require.NoError(t, err)
	v, err := NewListingValidator(registry)
	require.NoError(t, err)
	return registry, v
}

func validListing() domain.StoredListing {
	monthly := domain.RentMonthly
	cover := "https://images.example.com/cover/1.jpg"
	hash := "thrr3u8"
	return domain.StoredListing{
		ID:            "4937445",
		Title:         "Cozy flat",
		Purpose:       domain.PurposeRent,
		Price:         decimal.NewFromInt(85000),
		Rooms:         2,
		Baths:         2,
		Area:          decimal.RequireFromString("102.5"),
		RentFrequency: &monthly,
		Location:      "Dubai Marina",
		CoverPhotoURL: &cover,
		Geohash:       &hash,
	}
}

func TestKeyFromPath(t *testing.T) {
	assert.Equal(t, StoredListingV1, keyFromPath("stored-listing/v1.json"))
	assert.Equal(t, CacheInvalidationCommandV1, keyFromPath("cache-invalidation-command/v1.json"))
}

func TestListingValidatorAcceptsValid(t *testing.T) {
	_, v := newValidator(t)
	assert.NoError(t, v.Validate(validListing()))
}

func TestListingValidatorRejects(t *testing.T) {
	_, v := newValidator(t)

	tests := map[string]func(l *domain.StoredListing){
		"empty id":        func(l *domain.StoredListing) { l.ID = "" },
		"negative price":  func(l *domain.StoredListing) { l.Price = decimal.NewFromInt(-1) },
		"negative rooms":  func(l *domain.StoredListing) { l.Rooms = -2 },
		"unknown purpose": func(l *domain.StoredListing) { l.Purpose = "lease" },
		"empty location":  func(l *domain.StoredListing) { l.Location = "" },
		"buy with rent":   func(l *domain.StoredListing) { l.Purpose = domain.PurposeBuy },
		"bad cover url":   func(l *domain.StoredListing) { bad := "not a url"; l.CoverPhotoURL = &bad },
		"bad geohash":     func(l *domain.StoredListing) { bad := "ail!"; l.Geohash = &bad },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			l := validListing()
			mutate(&l)
			assert.ErrorIs(t, v.Validate(l), domain.ErrValidation)
		})
	}
}

func TestInvalidationCommandSchema(t *testing.T) {
	registry, _ := newValidator(t)

	assert.NoError(t, registry.ValidateJSON(CacheInvalidationCommandV1, []byte(`{"purpose":"for-sale"}`)))
	assert.NoError(t, registry.ValidateJSON(CacheInvalidationCommandV1, []byte(`{"purpose":"rent","page":3}`)))
	assert.Error(t, registry.ValidateJSON(CacheInvalidationCommandV1, []byte(`{"purpose":"rent","page":0}`)))
	assert.Error(t, registry.ValidateJSON(CacheInvalidationCommandV1, []byte(`{"page":1}`)))
	assert.Error(t, registry.ValidateJSON(CacheInvalidationCommandV1, []byte(`not json`)))
	assert.Error(t, registry.ValidateJSON("Unknown/1.0.0", []byte(`{}`)))
}
