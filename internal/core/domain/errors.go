package domain

import (
	"errors"
	"fmt"
)

var (
	// Фатальные для запроса
	ErrUpstreamUnavailable = errors.New("upstream source unavailable")
	ErrStoreUnavailable    = errors.New("listing store unavailable")

	// Восстанавливаемые, наружу не выходят
	ErrCacheDegraded = errors.New("pagination cache degraded")
	ErrImageMirror   = errors.New("image mirror failure")
	ErrValidation    = errors.New("listing validation failed")

	// Ошибки входных данных
	ErrInvalidPurpose    = errors.New("invalid purpose")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrInvalidFilters    = errors.New("invalid filters")
)

// FetchError описывает неудачный запрос страницы к внешнему API.
// StatusCode равен 0, если ответ не был получен.
type FetchError struct {
	Purpose    UpstreamPurpose
	Page       int
	StatusCode int
	Reason     string
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s page %d: %s", e.Purpose, e.Page, e.Reason)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}
