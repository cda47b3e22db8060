// Package redisx provides Redis-backed read-through caching for the price
// list. Price lookups happen on every order placement and invoice
// issuance; entries change rarely, so a short TTL keeps the hot path off
// the database without a dedicated invalidation channel.
package redisx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"distribution/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	// keyPrice is the cache key layout: price:{type}:{region}:{location}.
	keyPrice = "price:%s:%s:%s"

	// ttlPrice bounds staleness after a price list change.
	ttlPrice = 5 * time.Minute
)

// CachedPriceResolver decorates a PriceResolver with a Redis read-through
// cache. Cache failures fall through to the inner resolver; only resolved
// prices are cached, so an unpriced product is re-checked on every call.
type CachedPriceResolver struct {
	inner  ports.PriceResolver
	client *redis.Client
	logger *slog.Logger
}

// NewCachedPriceResolver wraps the given resolver with caching.
func NewCachedPriceResolver(inner ports.PriceResolver, client *redis.Client,
	logger *slog.Logger) *CachedPriceResolver {
	return &CachedPriceResolver{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

// ResolveUnitPrice implements ports.PriceResolver.
func (r *CachedPriceResolver) ResolveUnitPrice(ctx context.Context, productType, region,
	location string) (int64, bool, error) {
	key := fmt.Sprintf(keyPrice, productType, region, location)

	cached, err := r.client.Get(ctx, key).Result()
	if err == nil {
		perUnit, parseErr := strconv.ParseInt(cached, 10, 64)
		if parseErr == nil {
			return perUnit, true, nil
		}
		r.logger.Warn("corrupt price cache entry", "key", key, "value", cached)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("price cache read", "key", key, "error", err)
	}

	perUnit, found, err := r.inner.ResolveUnitPrice(ctx, productType, region, location)
	if err != nil || !found {
		return perUnit, found, err
	}

	if setErr := r.client.Set(ctx, key, strconv.FormatInt(perUnit, 10), ttlPrice).Err(); setErr != nil {
		r.logger.Warn("price cache write", "key", key, "error", setErr)
	}

	return perUnit, true, nil
}
