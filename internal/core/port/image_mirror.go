package port

import (
	"context"
	"listing-service/internal/core/domain"
	"time"
)

//go:generate mockgen -source=image_mirror.go -destination=mocks/image_mirror_mock.go -package=mocks

// ImageMirrorPort - зеркало обложек объявлений в объектном хранилище.
type ImageMirrorPort interface {
	Exists(ctx context.Context, id string, purpose domain.Purpose) (bool, error)
	Upload(ctx context.Context, id string, purpose domain.Purpose, sourceURL string) error
	SignedURL(ctx context.Context, id string, purpose domain.Purpose, ttl time.Duration) (string, error)
}
