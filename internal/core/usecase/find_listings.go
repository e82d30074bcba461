package usecase

import (
	"context"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"time"
)

// FindListingsUseCase - поиск по фильтрам напрямую в хранилище, без кэша страниц.
type FindListingsUseCase struct {
	store  port.ListingStoragePort
	signer imageSigner
}

func NewFindListingsUseCase(store port.ListingStoragePort, mirror port.ImageMirrorPort, signedURLTTL time.Duration) *FindListingsUseCase {
	return &FindListingsUseCase{
		store:  store,
		signer: imageSigner{mirror: mirror, ttl: signedURLTTL},
	}
}

func (uc *FindListingsUseCase) Execute(ctx context.Context, filters domain.ListingFilters, page, pageSize int) (*domain.FilteredListings, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "FindListings",
		"page":      page,
		"page_size": pageSize,
	})

	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf("%w: page=%d page_size=%d", domain.ErrInvalidPagination, page, pageSize)
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	ucLogger.Info("Use case started", nil)

	items, total, err := uc.store.FindWithFilters(ctx, filters, pageSize, (page-1)*pageSize)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, storeUnavailable("find with filters", err)
	}
	uc.signer.sign(ctx, ucLogger, items)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   total,
		"items_on_page": len(items),
	})
	return &domain.FilteredListings{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
