package rest

import (
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"net/http"
	"net/url"
	"strings"
)

const maxHitsPerPage = 100

type PropertyHandler struct {
	pageUC          usecases_port.PropertyHandlerPort
	findUC          usecases_port.FindListingsPort
	defaultPageSize int
}

func NewPropertyHandler(pageUC usecases_port.PropertyHandlerPort, findUC usecases_port.FindListingsPort, defaultPageSize int) *PropertyHandler {
	if defaultPageSize < 1 {
		defaultPageSize = domain.DefaultPageSize
	}
	return &PropertyHandler{pageUC: pageUC, findUC: findUC, defaultPageSize: defaultPageSize}
}

func (h *PropertyHandler) parsePagination(q url.Values) (int, int, error) {
	page, err := parseIntParam(q, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	hitsPerPage, err := parseIntParam(q, "hitsPerPage", h.defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidPagination)
	}
	if hitsPerPage < 1 || hitsPerPage > maxHitsPerPage {
		return 0, 0, fmt.Errorf("%w: hitsPerPage must be between 1 and %d", domain.ErrInvalidPagination, maxHitsPerPage)
	}
	return page, hitsPerPage, nil
}

// GetProperties обрабатывает GET /api/v1/properties
func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	purpose, err := domain.ParsePurpose(q.Get("purpose"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	page, hitsPerPage, err := h.parsePagination(q)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.pageUC.GetPage(r.Context(), domain.PageRequest{Purpose: purpose, Page: page, PageSize: hitsPerPage})
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PropertiesPageDTO{
		Hits:        toPropertyDTOs(result.Items),
		NbHits:      result.TotalCount,
		CurrentPage: result.Page,
		TotalPages:  result.TotalPages(),
		HitsPerPage: result.PageSize,
		Source:      string(result.Source),
	})
}

func parseFilters(q url.Values) (domain.ListingFilters, error) {
	var (
		f   domain.ListingFilters
		err error
	)
	if raw := strings.TrimSpace(q.Get("purpose")); raw != "" {
		p, perr := domain.ParsePurpose(raw)
		if perr != nil {
			return f, fmt.Errorf("%w: %w", domain.ErrInvalidFilters, perr)
		}
		f.Purpose = &p
	}
	if raw := strings.TrimSpace(q.Get("rentFrequency")); raw != "" {
		rf, ok := domain.ParseRentFrequency(raw)
		if !ok {
			return f, fmt.Errorf("%w: unknown rentFrequency %q", domain.ErrInvalidFilters, raw)
		}
		f.RentFrequency = &rf
	}

	if f.MinPrice, err = parseOptionalDecimal(q, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parseOptionalDecimal(q, "maxPrice"); err != nil {
		return f, err
	}
	if f.MinArea, err = parseOptionalDecimal(q, "minArea"); err != nil {
		return f, err
	}
	if f.MaxArea, err = parseOptionalDecimal(q, "maxArea"); err != nil {
		return f, err
	}
	if f.MinRooms, err = parseOptionalInt(q, "minRooms"); err != nil {
		return f, err
	}
	if f.MaxRooms, err = parseOptionalInt(q, "maxRooms"); err != nil {
		return f, err
	}
	if f.MinBaths, err = parseOptionalInt(q, "minBaths"); err != nil {
		return f, err
	}
	if f.MaxBaths, err = parseOptionalInt(q, "maxBaths"); err != nil {
		return f, err
	}
	f.Location = parseOptionalString(q, "location")
	f.FurnishingStatus = parseOptionalString(q, "furnishingStatus")
	return f, nil
}

// SearchProperties обрабатывает GET /api/v1/properties/search
func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters, err := parseFilters(q)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	page, hitsPerPage, err := h.parsePagination(q)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	contextkeys.LoggerFromContext(r.Context()).Debug("Processing search request", port.Fields{
		"handler":  "SearchProperties",
		"page":     page,
		"per_page": hitsPerPage,
	})

	result, err := h.findUC.Execute(r.Context(), filters, page, hitsPerPage)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PropertiesPageDTO{
		Hits:        toPropertyDTOs(result.Items),
		NbHits:      result.TotalCount,
		CurrentPage: result.Page,
		TotalPages:  result.TotalPages(),
		HitsPerPage: result.PageSize,
	})
}

// InvalidateCache обрабатывает DELETE /api/v1/properties/cache. Сбой кэша не ошибка для клиента.
func (h *PropertyHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	purpose, err := domain.ParsePurpose(q.Get("purpose"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var page *int
	if q.Get("page") != "" {
		p, err := parseIntParam(q, "page", 0)
		if err != nil || p < 1 {
			WriteJSONError(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		page = &p
	}

	h.pageUC.InvalidateCache(r.Context(), purpose, page)
	w.WriteHeader(http.StatusNoContent)
}

// CacheHealth обрабатывает GET /api/v1/properties/cache/health
func (h *PropertyHandler) CacheHealth(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, CacheHealthDTO{Healthy: h.pageUC.CheckHealth(r.Context())})
}
