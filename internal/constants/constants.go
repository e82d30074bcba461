package constants

import "time"

const (
	DefaultCacheTTL     = time.Hour
	DefaultSignedURLTTL = time.Hour

	CacheKeyPrefix = "properties"

	// Внешний API: Дубай
	DefaultLocationExternalIDs = "5002"
)

// RabbitMQ
const (
	ListingsExchange = "listings_exchange"

	RoutingKeyListingsBackfilled = "listings.backfilled"

	QueueCacheInvalidation      = "listing_cache_invalidation"
	RoutingKeyCacheInvalidation = "listings.cache.invalidate"

	FinalDLXExchange   = "listings_final_dlx"
	FinalDLQ           = "listings_final_dlq"
	FinalDLQRoutingKey = "listings.dead"
)
