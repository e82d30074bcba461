package port

import (
	"context"
	"listing-service/internal/core/domain"
)

//go:generate mockgen -source=listing_events.go -destination=mocks/listing_events_mock.go -package=mocks

// ListingEventsPort публикует события о догрузке объявлений.
type ListingEventsPort interface {
	PublishBackfill(ctx context.Context, event domain.BackfillEvent) error
}
