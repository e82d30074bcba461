package rest

import (
	"encoding/json"
	"listing-service/internal/core/domain"
	"time"
)

type PropertyDTO struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Purpose          string      `json:"purpose"`
	Price            json.Number `json:"price"`
	Rooms            int         `json:"rooms"`
	Baths            int         `json:"baths"`
	Area             json.Number `json:"area"`
	RentFrequency    *string     `json:"rentFrequency"`
	Location         string      `json:"location"`
	Description      string      `json:"description,omitempty"`
	FurnishingStatus *string     `json:"furnishingStatus"`
	ImageURL         *string     `json:"imageUrl"`
	Geohash          *string     `json:"geohash,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// PropertiesPageDTO - ответ GET /properties и /properties/search.
type PropertiesPageDTO struct {
	Hits        []PropertyDTO `json:"hits"`
	NbHits      int64         `json:"nbHits"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int64         `json:"totalPages"`
	HitsPerPage int           `json:"hitsPerPage"`
	Source      string        `json:"source,omitempty"`
}

type CacheHealthDTO struct {
	Healthy bool `json:"healthy"`
}

func toPropertyDTO(l domain.StoredListing) PropertyDTO {
	dto := PropertyDTO{
		ID:               l.ID,
		Title:            l.Title,
		Purpose:          string(l.Purpose.Upstream()),
		Price:            json.Number(l.Price.String()),
		Rooms:            l.Rooms,
		Baths:            l.Baths,
		Area:             json.Number(l.Area.String()),
		Location:         l.Location,
		Description:      l.Description,
		FurnishingStatus: l.FurnishingStatus,
		ImageURL:         l.ImageURL,
		Geohash:          l.Geohash,
		CreatedAt:        l.CreatedAt,
	}
	if l.RentFrequency != nil {
		rf := string(*l.RentFrequency)
		dto.RentFrequency = &rf
	}
	return dto
}

func toPropertyDTOs(items []domain.StoredListing) []PropertyDTO {
	out := make([]PropertyDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toPropertyDTO(it))
	}
	return out
}
