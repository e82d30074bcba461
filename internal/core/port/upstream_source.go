package port

import (
	"context"
	"listing-service/internal/core/domain"
)

//go:generate mockgen -source=upstream_source.go -destination=mocks/upstream_source_mock.go -package=mocks

// UpstreamSourcePort - внешний постраничный API объявлений.
type UpstreamSourcePort interface {
	// FetchPage нумерует страницы с 1. Любая неудача возвращается как *domain.FetchError.
	FetchPage(ctx context.Context, purpose domain.UpstreamPurpose, page, pageSize int) (*domain.UpstreamPage, error)
}
