package bayutfetcher

import (
	"listing-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

func toDomainListing(h bayutHit, fallback domain.UpstreamPurpose) domain.UpstreamListing {
	purpose := domain.UpstreamPurpose(h.Purpose)
	if !purpose.Valid() {
		purpose = fallback
	}

	locations := make([]domain.Location, 0, len(h.Location))
	for _, l := range h.Location {
		locations = append(locations, domain.Location{Name: l.Name, ExternalID: l.ExternalID})
	}

	listing := domain.UpstreamListing{
		ID:               string(h.ID),
		Title:            h.Title,
		Purpose:          purpose,
		Price:            decimal.NewFromFloat(h.Price),
		Rooms:            h.Rooms,
		Baths:            h.Baths,
		Area:             decimal.NewFromFloat(h.Area),
		RentFrequency:    h.RentFrequency,
		Locations:        locations,
		Description:      h.Description,
		FurnishingStatus: h.FurnishingStatus,
	}
	if listing.ID == "" {
		listing.ID = h.ExternalID
	}
	if h.CoverPhoto != nil {
		listing.CoverPhotoURL = h.CoverPhoto.URL
	}
	if h.Geography != nil {
		listing.Geography = &domain.Geography{Lat: h.Geography.Lat, Lng: h.Geography.Lng}
	}
	return listing
}
