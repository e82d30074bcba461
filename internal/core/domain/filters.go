package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ListingFilters - параметры поиска по сохраненным объявлениям. nil означает "не задано".
type ListingFilters struct {
	Purpose          *Purpose
	MinPrice         *decimal.Decimal
	MaxPrice         *decimal.Decimal
	MinRooms         *int
	MaxRooms         *int
	MinBaths         *int
	MaxBaths         *int
	MinArea          *decimal.Decimal
	MaxArea          *decimal.Decimal
	RentFrequency    *RentFrequency
	Location         *string
	FurnishingStatus *string
}

func (f ListingFilters) Validate() error {
	if f.Purpose != nil && !f.Purpose.Valid() {
		return fmt.Errorf("%w: purpose %q", ErrInvalidFilters, *f.Purpose)
	}
	if err := checkDecimalRange("price", f.MinPrice, f.MaxPrice); err != nil {
		return err
	}
	if err := checkDecimalRange("area", f.MinArea, f.MaxArea); err != nil {
		return err
	}
	if err := checkIntRange("rooms", f.MinRooms, f.MaxRooms); err != nil {
		return err
	}
	if err := checkIntRange("baths", f.MinBaths, f.MaxBaths); err != nil {
		return err
	}
	if f.RentFrequency != nil {
		if _, ok := ParseRentFrequency(string(*f.RentFrequency)); !ok {
			return fmt.Errorf("%w: rent frequency %q", ErrInvalidFilters, *f.RentFrequency)
		}
		if f.Purpose != nil && *f.Purpose == PurposeBuy {
			return fmt.Errorf("%w: rent frequency is only meaningful for rent", ErrInvalidFilters)
		}
	}
	return nil
}

func checkDecimalRange(name string, min, max *decimal.Decimal) error {
	if min != nil && min.IsNegative() {
		return fmt.Errorf("%w: min %s must be >= 0", ErrInvalidFilters, name)
	}
	if max != nil && max.IsNegative() {
		return fmt.Errorf("%w: max %s must be >= 0", ErrInvalidFilters, name)
	}
	if min != nil && max != nil && min.GreaterThan(*max) {
		return fmt.Errorf("%w: min %s greater than max %s", ErrInvalidFilters, name, name)
	}
	return nil
}

func checkIntRange(name string, min, max *int) error {
	if min != nil && *min < 0 {
		return fmt.Errorf("%w: min %s must be >= 0", ErrInvalidFilters, name)
	}
	if max != nil && *max < 0 {
		return fmt.Errorf("%w: max %s must be >= 0", ErrInvalidFilters, name)
	}
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%w: min %s greater than max %s", ErrInvalidFilters, name, name)
	}
	return nil
}

// FilteredListings - результат поиска с фильтрами.
type FilteredListings struct {
	Items      []StoredListing
	TotalCount int64
	Page       int
	PageSize   int
}

func (f FilteredListings) TotalPages() int64 {
	return TotalPages(f.TotalCount, f.PageSize)
}
