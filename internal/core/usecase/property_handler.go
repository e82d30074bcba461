package usecase

import (
	"context"
	"errors"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// sharedBackfillTimeout ограничивает общую догрузку, отвязанную от отмены запроса.
const sharedBackfillTimeout = 2 * time.Minute

type PropertyHandlerConfig struct {
	CacheTTL          time.Duration
	SignedURLTTL      time.Duration
	MirrorConcurrency int
	// DedupBackfill склеивает одновременные догрузки одной и той же страницы.
	DedupBackfill bool
}

// PropertyHandlerDeps - зависимости use case. Archive и Events необязательны.
type PropertyHandlerDeps struct {
	Store     port.ListingStoragePort
	Cache     port.PaginationCachePort
	Mirror    port.ImageMirrorPort
	Upstream  port.UpstreamSourcePort
	Validator port.ListingValidatorPort
	Archive   port.ListingArchivePort
	Events    port.ListingEventsPort
}

// PropertyHandlerUseCase отдает страницы объявлений по схеме cache-aside
// с догрузкой из внешнего API, когда в хранилище не хватает строк.
type PropertyHandlerUseCase struct {
	store     port.ListingStoragePort
	cache     port.PaginationCachePort
	mirror    port.ImageMirrorPort
	upstream  port.UpstreamSourcePort
	validator port.ListingValidatorPort
	archive   port.ListingArchivePort
	events    port.ListingEventsPort

	signer    imageSigner
	cfg       PropertyHandlerConfig
	backfills singleflight.Group
	now       func() time.Time
}

func NewPropertyHandlerUseCase(deps PropertyHandlerDeps, cfg PropertyHandlerConfig) (*PropertyHandlerUseCase, error) {
	switch {
	case deps.Store == nil:
		return nil, fmt.Errorf("property handler: store cannot be nil")
	case deps.Cache == nil:
		return nil, fmt.Errorf("property handler: cache cannot be nil")
	case deps.Mirror == nil:
		return nil, fmt.Errorf("property handler: image mirror cannot be nil")
	case deps.Upstream == nil:
		return nil, fmt.Errorf("property handler: upstream source cannot be nil")
	case deps.Validator == nil:
		return nil, fmt.Errorf("property handler: validator cannot be nil")
	}
	if cfg.MirrorConcurrency < 1 {
		cfg.MirrorConcurrency = 1
	}
	return &PropertyHandlerUseCase{
		store:     deps.Store,
		cache:     deps.Cache,
		mirror:    deps.Mirror,
		upstream:  deps.Upstream,
		validator: deps.Validator,
		archive:   deps.Archive,
		events:    deps.Events,
		signer:    imageSigner{mirror: deps.Mirror, ttl: cfg.SignedURLTTL},
		cfg:       cfg,
		now:       time.Now,
	}, nil
}

func storeUnavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}

func (uc *PropertyHandlerUseCase) GetPage(ctx context.Context, req domain.PageRequest) (*domain.ListingsPage, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "GetPage",
		"purpose":   req.Purpose,
		"page":      req.Page,
		"page_size": req.PageSize,
	})
	ctx = contextkeys.ContextWithLogger(ctx, ucLogger)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	page, err := uc.fromCache(ctx, ucLogger, req)
	if err != nil {
		return nil, err
	}
	if page != nil {
		ucLogger.Info("Page served from cache", port.Fields{"items": len(page.Items)})
		return page, nil
	}

	count, err := uc.store.CountByPurpose(ctx, req.Purpose)
	if err != nil {
		ucLogger.Error("Failed to count listings", err, nil)
		return nil, storeUnavailable("count by purpose", err)
	}

	if int64(req.Offset()) >= count {
		ucLogger.Info("Store has not enough rows, backfilling from upstream", port.Fields{"store_count": count})
		return uc.backfillDeduped(ctx, req)
	}
	return uc.fromStore(ctx, ucLogger, req, count)
}

// fromCache возвращает nil, nil при промахе, в том числе когда кэш недоступен
// или закэшированные id больше не находятся в хранилище.
func (uc *PropertyHandlerUseCase) fromCache(ctx context.Context, logger port.LoggerPort, req domain.PageRequest) (*domain.ListingsPage, error) {
	entries, found, err := uc.cache.Get(ctx, req.Purpose, req.Page, req.PageSize)
	if err != nil {
		logger.Warn("Cache read failed, treating as miss", port.Fields{"error": err.Error()})
		return nil, nil
	}
	if !found {
		return nil, nil
	}

	ids := domain.CacheEntryIDs(entries)
	rows, err := uc.store.FindByIDs(ctx, ids)
	if err != nil {
		logger.Error("Failed to load cached listings", err, nil)
		return nil, storeUnavailable("find by ids", err)
	}
	if len(ids) > 0 && len(rows) == 0 {
		logger.Warn("Cached ids not found in store, dropping cache entry", port.Fields{"ids_count": len(ids)})
		page := req.Page
		if err := uc.cache.Invalidate(ctx, req.Purpose, &page); err != nil {
			logger.Warn("Failed to drop stale cache entry", port.Fields{"error": err.Error()})
		}
		return nil, nil
	}

	// FindByIDs не сохраняет порядок, восстанавливаем порядок страницы
	byID := make(map[string]domain.StoredListing, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	items := make([]domain.StoredListing, 0, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			items = append(items, row)
		}
	}
	uc.signer.sign(ctx, logger, items)

	count, err := uc.store.CountByPurpose(ctx, req.Purpose)
	if err != nil {
		logger.Error("Failed to count listings", err, nil)
		return nil, storeUnavailable("count by purpose", err)
	}

	return &domain.ListingsPage{
		Items:      items,
		TotalCount: count,
		Page:       req.Page,
		PageSize:   req.PageSize,
		Source:     domain.SourceCache,
	}, nil
}

func (uc *PropertyHandlerUseCase) fromStore(ctx context.Context, logger port.LoggerPort, req domain.PageRequest, count int64) (*domain.ListingsPage, error) {
	rows, err := uc.store.PageByPurpose(ctx, req.Purpose, req.Offset(), req.PageSize)
	if err != nil {
		logger.Error("Failed to read listings page", err, nil)
		return nil, storeUnavailable("page by purpose", err)
	}
	uc.signer.sign(ctx, logger, rows)

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	uc.writeCache(ctx, logger, req, ids)

	logger.Info("Page served from store", port.Fields{"items": len(rows), "total_count": count})
	return &domain.ListingsPage{
		Items:      rows,
		TotalCount: count,
		Page:       req.Page,
		PageSize:   req.PageSize,
		Source:     domain.SourceStore,
	}, nil
}

func (uc *PropertyHandlerUseCase) writeCache(ctx context.Context, logger port.LoggerPort, req domain.PageRequest, ids []string) {
	entries := domain.BuildCacheEntries(req.Page, req.PageSize, ids)
	if err := uc.cache.Set(ctx, req.Purpose, req.Page, req.PageSize, entries, uc.cfg.CacheTTL); err != nil {
		logger.Warn("Cache write failed, ignoring", port.Fields{"error": err.Error()})
	}
}

func (uc *PropertyHandlerUseCase) backfillDeduped(ctx context.Context, req domain.PageRequest) (*domain.ListingsPage, error) {
	if !uc.cfg.DedupBackfill {
		return uc.backfill(ctx, req)
	}

	key := fmt.Sprintf("%s:%d:%d", req.Purpose, req.Page, req.PageSize)
	// Общая догрузка не зависит от отмены контекста первого вызывающего:
	// каждый ждет результат только в рамках своего ctx.
	ch := uc.backfills.DoChan(key, func() (interface{}, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedBackfillTimeout)
		defer cancel()
		return uc.backfill(sharedCtx, req)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for backfill: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		page := res.Val.(*domain.ListingsPage)
		if !res.Shared {
			return page, nil
		}
		out := *page
		out.Items = append([]domain.StoredListing(nil), page.Items...)
		return &out, nil
	}
}

// backfill загружает страницу из внешнего API, зеркалирует обложки, сохраняет
// объявления и кэширует порядок id. Ошибка внешнего API фатальна для запроса,
// сбои отдельных объявлений только логируются.
func (uc *PropertyHandlerUseCase) backfill(ctx context.Context, req domain.PageRequest) (*domain.ListingsPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	upstreamPage, err := uc.upstream.FetchPage(ctx, req.Purpose.Upstream(), req.Page, req.PageSize)
	if err != nil {
		logger.Error("Upstream fetch failed", err, nil)
		var fe *domain.FetchError
		if !errors.As(err, &fe) {
			err = &domain.FetchError{Purpose: req.Purpose.Upstream(), Page: req.Page, Reason: "request failed", Err: err}
		}
		return nil, err
	}

	if uc.archive != nil {
		if err := uc.archive.ArchivePage(ctx, upstreamPage); err != nil {
			logger.Warn("Failed to archive upstream page", port.Fields{"error": err.Error()})
		}
	}

	results := make([]*domain.StoredListing, len(upstreamPage.Items))
	var upsertFailures atomic.Int32

	g := new(errgroup.Group)
	g.SetLimit(uc.cfg.MirrorConcurrency)
	for i, item := range upstreamPage.Items {
		g.Go(func() error {
			saved, ok := uc.storeListing(ctx, logger, req.Purpose, item)
			if !ok {
				upsertFailures.Add(1)
				return nil
			}
			results[i] = saved
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("backfill interrupted: %w", err)
	}

	items := make([]domain.StoredListing, 0, len(results))
	ids := make([]string, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		items = append(items, *r)
		ids = append(ids, r.ID)
	}

	// Неполную из-за сбоев хранилища страницу не кэшируем, иначе пропуски жили бы до истечения TTL
	if upsertFailures.Load() == 0 {
		uc.writeCache(ctx, logger, req, ids)
	} else {
		logger.Warn("Some listings were not stored, skipping cache write", port.Fields{"failed": upsertFailures.Load()})
	}

	if uc.events != nil {
		err := uc.events.PublishBackfill(ctx, domain.BackfillEvent{
			Purpose:    req.Purpose,
			Page:       req.Page,
			PageSize:   req.PageSize,
			IDs:        ids,
			TotalCount: upstreamPage.TotalCount,
			OccurredAt: uc.now(),
		})
		if err != nil {
			logger.Warn("Failed to publish backfill event", port.Fields{"error": err.Error()})
		}
	}

	logger.Info("Page backfilled from upstream", port.Fields{
		"fetched":     len(upstreamPage.Items),
		"stored":      len(items),
		"total_count": upstreamPage.TotalCount,
	})
	return &domain.ListingsPage{
		Items:      items,
		TotalCount: upstreamPage.TotalCount,
		Page:       req.Page,
		PageSize:   req.PageSize,
		Source:     domain.SourceUpstream,
	}, nil
}

// storeListing возвращает ok=false только при сбое upsert. Отбракованное
// валидацией объявление дает nil, true.
func (uc *PropertyHandlerUseCase) storeListing(ctx context.Context, logger port.LoggerPort, purpose domain.Purpose, item domain.UpstreamListing) (*domain.StoredListing, bool) {
	itemLogger := logger.WithFields(port.Fields{"listing_id": item.ID})

	stored := item.ToStored(purpose)
	if err := uc.validator.Validate(stored); err != nil {
		itemLogger.Warn("Listing failed validation, skipping", port.Fields{"error": err.Error()})
		return nil, true
	}

	signedURL := uc.mirrorImage(ctx, itemLogger, &stored)

	saved, err := uc.store.Upsert(ctx, stored)
	if err != nil {
		itemLogger.Error("Failed to upsert listing, skipping", err, nil)
		return nil, false
	}
	if signedURL != "" {
		saved.ImageURL = &signedURL
	} else {
		saved.ImageURL = saved.CoverPhotoURL
	}
	return saved, true
}

// mirrorImage копирует обложку в объектное хранилище, если ее там еще нет,
// и возвращает подписанную ссылку. Пустая строка означает, что ссылки нет.
func (uc *PropertyHandlerUseCase) mirrorImage(ctx context.Context, logger port.LoggerPort, listing *domain.StoredListing) string {
	if listing.CoverPhotoURL == nil {
		return ""
	}

	exists, err := uc.mirror.Exists(ctx, listing.ID, listing.Purpose)
	if err != nil {
		logger.Warn("Image existence check failed", port.Fields{"error": err.Error()})
		return ""
	}
	if !exists {
		if err := uc.mirror.Upload(ctx, listing.ID, listing.Purpose, *listing.CoverPhotoURL); err != nil {
			logger.Warn("Image upload failed", port.Fields{"error": err.Error()})
			return ""
		}
	}

	key := domain.ImageObjectKey(listing.Purpose, listing.ID)
	listing.ImageKey = &key

	url, err := uc.mirror.SignedURL(ctx, listing.ID, listing.Purpose, uc.cfg.SignedURLTTL)
	if err != nil {
		logger.Warn("Image signing failed", port.Fields{"error": err.Error()})
		return ""
	}
	return url
}

// InvalidateCache никогда не возвращает ошибку вызывающему.
func (uc *PropertyHandlerUseCase) InvalidateCache(ctx context.Context, purpose domain.Purpose, page *int) {
	fields := port.Fields{"use_case": "InvalidateCache", "purpose": purpose}
	if page != nil {
		fields["page"] = *page
	}
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(fields)

	if err := uc.cache.Invalidate(ctx, purpose, page); err != nil {
		ucLogger.Warn("Cache invalidation failed", port.Fields{"error": err.Error()})
		return
	}
	ucLogger.Info("Cache invalidated", nil)
}

func (uc *PropertyHandlerUseCase) CheckHealth(ctx context.Context) bool {
	return uc.cache.HealthCheck(ctx)
}
