package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

//go:generate mockgen -source=find_listings_usecase.go -destination=mocks/find_listings_usecase_mock.go -package=mocks

type FindListingsPort interface {
	Execute(ctx context.Context, filters domain.ListingFilters, page, pageSize int) (*domain.FilteredListings, error)
}
