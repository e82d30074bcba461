package usecase

import (
	"context"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"time"
)

// imageSigner проставляет ImageURL: свежая подписанная ссылка на зеркало,
// иначе исходная ссылка на обложку, иначе nil.
type imageSigner struct {
	mirror port.ImageMirrorPort
	ttl    time.Duration
}

func (s imageSigner) sign(ctx context.Context, logger port.LoggerPort, items []domain.StoredListing) {
	for i := range items {
		item := &items[i]
		item.ImageURL = item.CoverPhotoURL
		if item.ImageKey == nil {
			continue
		}
		url, err := s.mirror.SignedURL(ctx, item.ID, item.Purpose, s.ttl)
		if err != nil {
			logger.Warn("Failed to sign image URL, using cover photo", port.Fields{
				"listing_id": item.ID,
				"error":      err.Error(),
			})
			continue
		}
		item.ImageURL = &url
	}
}
