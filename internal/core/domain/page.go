package domain

import "fmt"

const DefaultPageSize = 9

type PageSource string

const (
	SourceCache    PageSource = "cache"
	SourceStore    PageSource = "store"
	SourceUpstream PageSource = "upstream"
)

// PageRequest - запрос одной страницы. Page нумеруется с 1.
type PageRequest struct {
	Purpose  Purpose
	Page     int
	PageSize int
}

func (r PageRequest) Validate() error {
	if !r.Purpose.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPurpose, r.Purpose)
	}
	if r.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidPagination, r.Page)
	}
	if r.PageSize < 1 {
		return fmt.Errorf("%w: page size must be > 0, got %d", ErrInvalidPagination, r.PageSize)
	}
	return nil
}

// Offset - позиция первого элемента страницы в общем упорядоченном списке.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

type ListingsPage struct {
	Items      []StoredListing
	TotalCount int64
	Page       int
	PageSize   int
	Source     PageSource
}

// TotalPages считается от общего числа объявлений, а не от nbPages внешнего API.
func (p ListingsPage) TotalPages() int64 {
	return TotalPages(p.TotalCount, p.PageSize)
}

// TotalPages - число страниц размера pageSize, покрывающих total объявлений.
func TotalPages(total int64, pageSize int) int64 {
	if pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return (total + size - 1) / size
}

// UpstreamPage - одна страница ответа внешнего API.
type UpstreamPage struct {
	Purpose    UpstreamPurpose
	Items      []UpstreamListing
	TotalCount int64
	Page       int
	PageSize   int
}
