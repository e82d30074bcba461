package bayutfetcher

import (
	"context"
	"encoding/json"
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"strconv"

	"github.com/gocolly/colly/v2"
)

func (a *BayutFetcherAdapter) buildPageURL(purpose domain.UpstreamPurpose, page, pageSize int) string {
	u := *a.listURL
	q := u.Query()
	q.Set("locationExternalIDs", a.cfg.LocationExternalIDs)
	q.Set("purpose", string(purpose))
	q.Set("hitsPerPage", strconv.Itoa(pageSize))
	// внешний API нумерует страницы с 0
	q.Set("page", strconv.Itoa(page-1))
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchPage запрашивает одну страницу. Никаких частичных результатов: любая ошибка
// возвращается как *domain.FetchError.
func (a *BayutFetcherAdapter) FetchPage(ctx context.Context, purpose domain.UpstreamPurpose, page, pageSize int) (*domain.UpstreamPage, error) {
	fetchLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BayutFetcherAdapter(FetchPage)",
		"purpose":   purpose,
		"page":      page,
		"page_size": pageSize,
	})

	fail := func(status int, reason string, err error) error {
		return &domain.FetchError{Purpose: purpose, Page: page, StatusCode: status, Reason: reason, Err: err}
	}
	if !purpose.Valid() {
		return nil, fail(0, "invalid purpose", nil)
	}
	if page < 1 || pageSize < 1 {
		return nil, fail(0, "invalid pagination", nil)
	}

	collector := a.collector.Clone()
	collector.Context = ctx

	var (
		decoded     *bayutListResponse
		responseErr error
	)

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("X-RapidAPI-Key", a.cfg.APIKey)
		r.Headers.Set("X-RapidAPI-Host", a.cfg.APIHost)
		r.Headers.Set("Accept", "application/json")
	})

	collector.OnResponse(func(r *colly.Response) {
		var body bayutListResponse
		if err := json.Unmarshal(r.Body, &body); err != nil {
			responseErr = fail(r.StatusCode, "malformed payload", err)
			return
		}
		if body.Hits == nil {
			responseErr = fail(r.StatusCode, "malformed payload", errors.New("missing hits"))
			return
		}
		decoded = &body
	})

	collector.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		if status != 0 {
			responseErr = fail(status, "unexpected status", err)
			return
		}
		responseErr = fail(0, "request failed", err)
	})

	target := a.buildPageURL(purpose, page, pageSize)
	fetchLogger.Debug("Requesting upstream page", port.Fields{"url": target})

	visitErr := collector.Visit(target)
	collector.Wait()

	if responseErr != nil {
		fetchLogger.Error("Upstream page fetch failed", responseErr, nil)
		return nil, responseErr
	}
	if visitErr != nil {
		fetchLogger.Error("Upstream page fetch failed", visitErr, nil)
		return nil, fail(0, "request failed", visitErr)
	}
	if decoded == nil {
		return nil, fail(0, "empty response", nil)
	}

	items := make([]domain.UpstreamListing, 0, len(decoded.Hits))
	for _, hit := range decoded.Hits {
		items = append(items, toDomainListing(hit, purpose))
	}

	result := &domain.UpstreamPage{
		Purpose:    purpose,
		Items:      items,
		TotalCount: decoded.NbHits,
		Page:       page,
		PageSize:   pageSize,
	}
	fetchLogger.Info("Upstream page fetched", port.Fields{"items": len(items), "total_count": result.TotalCount})
	return result, nil
}
