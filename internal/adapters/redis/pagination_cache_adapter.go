package redis_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	scanBatchSize      = 200
	healthCheckTimeout = 2 * time.Second
)

// RedisPaginationCacheAdapter хранит страницу как JSON-массив {serialNumber, id}.
// Ключ: properties:{purpose}:page:{page}:{pageSize}
type RedisPaginationCacheAdapter struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisPaginationCacheAdapter(client redis.UniversalClient) (*RedisPaginationCacheAdapter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	return &RedisPaginationCacheAdapter{client: client, prefix: constants.CacheKeyPrefix}, nil
}

func (a *RedisPaginationCacheAdapter) pageKey(purpose domain.Purpose, page, pageSize int) string {
	return fmt.Sprintf("%s:%s:page:%d:%d", a.prefix, purpose, page, pageSize)
}

// pattern для SCAN: все размеры одной страницы или все страницы назначения.
func (a *RedisPaginationCacheAdapter) pattern(purpose domain.Purpose, page *int) string {
	if page != nil {
		return fmt.Sprintf("%s:%s:page:%d:*", a.prefix, purpose, *page)
	}
	return fmt.Sprintf("%s:%s:page:*", a.prefix, purpose)
}

func (a *RedisPaginationCacheAdapter) Get(ctx context.Context, purpose domain.Purpose, page, pageSize int) ([]domain.CacheEntry, bool, error) {
	key := a.pageKey(purpose, page, pageSize)
	raw, err := a.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %v", domain.ErrCacheDegraded, key, err)
	}

	var entries []domain.CacheEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Битое значение равносильно промаху, удаляем его
		contextkeys.LoggerFromContext(ctx).Warn("Corrupted cache entry dropped", port.Fields{
			"component": "RedisPaginationCacheAdapter", "key": key, "error": err.Error(),
		})
		_ = a.client.Del(ctx, key).Err()
		return nil, false, nil
	}
	return entries, true, nil
}

func (a *RedisPaginationCacheAdapter) Set(ctx context.Context, purpose domain.Purpose, page, pageSize int, entries []domain.CacheEntry, ttl time.Duration) error {
	key := a.pageKey(purpose, page, pageSize)
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal cache entries: %w", err)
	}
	if err := a.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", domain.ErrCacheDegraded, key, err)
	}
	return nil
}

// Invalidate удаляет ключи, найденные через SCAN, пачками.
func (a *RedisPaginationCacheAdapter) Invalidate(ctx context.Context, purpose domain.Purpose, page *int) error {
	pattern := a.pattern(purpose, page)
	iter := a.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()

	batch := make([]string, 0, scanBatchSize)
	deleted := 0
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := a.client.Del(ctx, batch...).Err(); err != nil {
			return err
		}
		deleted += len(batch)
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= scanBatchSize {
			if err := flush(); err != nil {
				return fmt.Errorf("%w: delete %s: %v", domain.ErrCacheDegraded, pattern, err)
			}
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: scan %s: %v", domain.ErrCacheDegraded, pattern, err)
	}
	if err := flush(); err != nil {
		return fmt.Errorf("%w: delete %s: %v", domain.ErrCacheDegraded, pattern, err)
	}

	contextkeys.LoggerFromContext(ctx).Debug("Cache keys invalidated", port.Fields{
		"component": "RedisPaginationCacheAdapter", "pattern": pattern, "deleted": deleted,
	})
	return nil
}

func (a *RedisPaginationCacheAdapter) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return a.client.Ping(ctx).Err() == nil
}
