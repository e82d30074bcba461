package port

import (
	"context"
	"listing-service/internal/core/domain"
)

//go:generate mockgen -source=listing_archive.go -destination=mocks/listing_archive_mock.go -package=mocks

// ListingArchivePort сохраняет сырые страницы внешнего API.
type ListingArchivePort interface {
	ArchivePage(ctx context.Context, page *domain.UpstreamPage) error
}
