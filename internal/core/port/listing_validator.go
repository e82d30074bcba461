package port

import "listing-service/internal/core/domain"

//go:generate mockgen -source=listing_validator.go -destination=mocks/listing_validator_mock.go -package=mocks

type ListingValidatorPort interface {
	Validate(listing domain.StoredListing) error
}
