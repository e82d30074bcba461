package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

//go:generate mockgen -source=property_handler_usecase.go -destination=mocks/property_handler_usecase_mock.go -package=mocks

type PropertyHandlerPort interface {
	GetPage(ctx context.Context, req domain.PageRequest) (*domain.ListingsPage, error)
	InvalidateCache(ctx context.Context, purpose domain.Purpose, page *int)
	CheckHealth(ctx context.Context) bool
}
