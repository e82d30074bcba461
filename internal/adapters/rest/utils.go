package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// writeUseCaseError переводит ошибки ядра в HTTP-статусы.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	logger := contextkeys.LoggerFromContext(r.Context())
	switch {
	case errors.Is(err, domain.ErrInvalidPurpose),
		errors.Is(err, domain.ErrInvalidPagination),
		errors.Is(err, domain.ErrInvalidFilters):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		logger.Error("Upstream unavailable", err, nil)
		WriteJSONError(w, http.StatusBadGateway, "upstream listing source is unavailable")
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.Error("Store unavailable", err, nil)
		WriteJSONError(w, http.StatusServiceUnavailable, "listing store is unavailable")
	default:
		logger.Error("Unexpected error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseIntParam(q url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidPagination, key)
	}
	return v, nil
}

func parseOptionalInt(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidFilters, key)
	}
	return &v, nil
}

func parseOptionalDecimal(q url.Values, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidFilters, key)
	}
	return &v, nil
}

func parseOptionalString(q url.Values, key string) *string {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}
