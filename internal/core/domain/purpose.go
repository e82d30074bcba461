package domain

import (
	"fmt"
	"strings"
)

// Purpose - назначение объявления во внутреннем словаре (хранилище, кэш, ключи объектов).
type Purpose string

const (
	PurposeBuy  Purpose = "buy"
	PurposeRent Purpose = "rent"
)

// UpstreamPurpose - назначение объявления в словаре внешнего API.
type UpstreamPurpose string

const (
	UpstreamForSale UpstreamPurpose = "for-sale"
	UpstreamForRent UpstreamPurpose = "for-rent"
)

// ParsePurpose принимает значение из любого из двух словарей.
func ParsePurpose(raw string) (Purpose, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(PurposeBuy), string(UpstreamForSale):
		return PurposeBuy, nil
	case string(PurposeRent), string(UpstreamForRent):
		return PurposeRent, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPurpose, raw)
}

func (p Purpose) Valid() bool {
	return p == PurposeBuy || p == PurposeRent
}

// Upstream переводит назначение в словарь внешнего API.
func (p Purpose) Upstream() UpstreamPurpose {
	if p == PurposeRent {
		return UpstreamForRent
	}
	return UpstreamForSale
}

// Internal переводит назначение внешнего API во внутренний словарь.
func (u UpstreamPurpose) Internal() Purpose {
	if u == UpstreamForRent {
		return PurposeRent
	}
	return PurposeBuy
}

func (u UpstreamPurpose) Valid() bool {
	return u == UpstreamForSale || u == UpstreamForRent
}
