package port

import (
	"context"
	"listing-service/internal/core/domain"
)

//go:generate mockgen -source=listing_storage.go -destination=mocks/listing_storage_mock.go -package=mocks

// ListingStoragePort - контракт постоянного хранилища объявлений.
type ListingStoragePort interface {
	// Upsert вставляет объявление или обновляет изменяемые поля существующего.
	// created_at при обновлении не меняется.
	Upsert(ctx context.Context, listing domain.StoredListing) (*domain.StoredListing, error)
	CountByPurpose(ctx context.Context, purpose domain.Purpose) (int64, error)
	// PageByPurpose отдает строки, упорядоченные по created_at убыванию.
	PageByPurpose(ctx context.Context, purpose domain.Purpose, offset, limit int) ([]domain.StoredListing, error)
	// FindByIDs не гарантирует порядок; отсутствующие id пропускаются.
	FindByIDs(ctx context.Context, ids []string) ([]domain.StoredListing, error)
	FindWithFilters(ctx context.Context, filters domain.ListingFilters, limit, offset int) ([]domain.StoredListing, int64, error)
}
