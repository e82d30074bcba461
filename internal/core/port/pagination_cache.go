package port

import (
	"context"
	"listing-service/internal/core/domain"
	"time"
)

//go:generate mockgen -source=pagination_cache.go -destination=mocks/pagination_cache_mock.go -package=mocks

// PaginationCachePort хранит упорядоченные списки id по страницам.
type PaginationCachePort interface {
	// Get возвращает found=false при промахе. Ошибка означает недоступность кэша.
	Get(ctx context.Context, purpose domain.Purpose, page, pageSize int) ([]domain.CacheEntry, bool, error)
	Set(ctx context.Context, purpose domain.Purpose, page, pageSize int, entries []domain.CacheEntry, ttl time.Duration) error
	// Invalidate с page == nil сбрасывает все страницы назначения.
	Invalidate(ctx context.Context, purpose domain.Purpose, page *int) error
	HealthCheck(ctx context.Context) bool
}
