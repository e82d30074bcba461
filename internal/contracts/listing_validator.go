package contracts

import (
	"encoding/json"
	"fmt"

	"listing-service/internal/core/domain"
)

// listingDocument - форма StoredListing, которую проверяет схема.
type listingDocument struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Purpose          string  `json:"purpose"`
	Price            float64 `json:"price"`
	Rooms            int     `json:"rooms"`
	Baths            int     `json:"baths"`
	Area             float64 `json:"area"`
	RentFrequency    *string `json:"rentFrequency"`
	Location         string  `json:"location"`
	Description      string  `json:"description"`
	FurnishingStatus *string `json:"furnishingStatus"`
	CoverPhotoURL    *string `json:"coverPhotoUrl"`
	Geohash          *string `json:"geohash"`
}

// ListingValidator проверяет объявление перед записью в хранилище.
type ListingValidator struct {
	registry *Registry
}

func NewListingValidator(registry *Registry) (*ListingValidator, error) {
	if registry == nil {
		return nil, fmt.Errorf("schema registry cannot be nil")
	}
	return &ListingValidator{registry: registry}, nil
}

func (v *ListingValidator) Validate(listing domain.StoredListing) error {
	doc := listingDocument{
		ID:               listing.ID,
		Title:            listing.Title,
		Purpose:          string(listing.Purpose),
		Price:            listing.Price.InexactFloat64(),
		Rooms:            listing.Rooms,
		Baths:            listing.Baths,
		Area:             listing.Area.InexactFloat64(),
		Location:         listing.Location,
		Description:      listing.Description,
		FurnishingStatus: listing.FurnishingStatus,
		CoverPhotoURL:    listing.CoverPhotoURL,
		Geohash:          listing.Geohash,
	}
	if listing.RentFrequency != nil {
		rf := string(*listing.RentFrequency)
		doc.RentFrequency = &rf
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: marshal listing %s: %v", domain.ErrValidation, listing.ID, err)
	}
	if err := v.registry.ValidateJSON(StoredListingV1, body); err != nil {
		return fmt.Errorf("%w: listing %q: %v", domain.ErrValidation, listing.ID, err)
	}
	return nil
}
