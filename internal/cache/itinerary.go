// Package cache provides a Redis-backed read-through cache for generated
// itineraries. Generation is cheap but the cached form preserves the exact
// payload the client last received, including the generation timestamp.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wayfarer-travel/wayfarer/backend/internal/itinerary"
)

// DefaultTTL bounds how long a cached itinerary outlives its generation.
const DefaultTTL = 24 * time.Hour

// ItineraryCache stores one generated itinerary per trip under
// "itinerary:{tripID}", JSON-encoded, with a TTL.
type ItineraryCache struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewItineraryCache constructs a cache over the given Redis client.
// A non-positive ttl falls back to DefaultTTL.
func NewItineraryCache(rdb redis.Cmdable, ttl time.Duration) *ItineraryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ItineraryCache{rdb: rdb, prefix: "itinerary", ttl: ttl}
}

func (c *ItineraryCache) key(tripID uuid.UUID) string {
	return c.prefix + ":" + tripID.String()
}

// Get returns the cached itinerary for the trip, or (nil, nil) on a miss.
func (c *ItineraryCache) Get(ctx context.Context, tripID uuid.UUID) (*itinerary.GeneratedItinerary, error) {
	raw, err := c.rdb.Get(ctx, c.key(tripID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache.ItineraryCache.Get: %w", err)
	}

	var gen itinerary.GeneratedItinerary
	if err := json.Unmarshal([]byte(raw), &gen); err != nil {
		return nil, fmt.Errorf("cache.ItineraryCache.Get: decode: %w", err)
	}
	return &gen, nil
}

// Set stores the itinerary for the trip, replacing any previous entry.
func (c *ItineraryCache) Set(ctx context.Context, tripID uuid.UUID, gen itinerary.GeneratedItinerary) error {
	raw, err := json.Marshal(gen)
	if err != nil {
		return fmt.Errorf("cache.ItineraryCache.Set: encode: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key(tripID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.ItineraryCache.Set: %w", err)
	}
	return nil
}

// Invalidate removes the trip's cache entry. Removing an absent entry is
// not an error.
func (c *ItineraryCache) Invalidate(ctx context.Context, tripID uuid.UUID) error {
	if err := c.rdb.Del(ctx, c.key(tripID)).Err(); err != nil {
		return fmt.Errorf("cache.ItineraryCache.Invalidate: %w", err)
	}
	return nil
}
