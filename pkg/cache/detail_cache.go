package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"placefinder/internal/clients/maps"
)

// DetailCache memoizes place-detail lookups. Purely additive: a miss just
// means another provider call, and cached entries never affect ordering
// or dedup.
type DetailCache interface {
	Get(ctx context.Context, placeID string) (*maps.PlaceDetail, bool)
	Set(ctx context.Context, placeID string, detail *maps.PlaceDetail)
}

// --------- in-memory cache ---------

type memoryEntry struct {
	detail    *maps.PlaceDetail
	expiresAt time.Time
}

type inMemoryDetailCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	store map[string]memoryEntry
}

func NewInMemoryDetailCache(ttl time.Duration) DetailCache {
	return &inMemoryDetailCache{
		ttl:   ttl,
		store: make(map[string]memoryEntry),
	}
}

func (c *inMemoryDetailCache) Get(_ context.Context, placeID string) (*maps.PlaceDetail, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[placeID]
	if !ok || time.Now().After(it.expiresAt) {
		return nil, false
	}
	return it.detail, true
}

func (c *inMemoryDetailCache) Set(_ context.Context, placeID string, detail *maps.PlaceDetail) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[placeID] = memoryEntry{detail: detail, expiresAt: time.Now().Add(c.ttl)}

	// Opportunistic cleanup so the map does not grow without bound.
	if len(c.store) > 10000 {
		now := time.Now()
		for k, v := range c.store {
			if now.After(v.expiresAt) {
				delete(c.store, k)
			}
		}
	}
}

// --------- redis cache ---------

const placeDetailKeyFormat = "place_detail_v1:"

type redisDetailCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDetailCache(client *redis.Client, ttl time.Duration) DetailCache {
	return &redisDetailCache{client: client, ttl: ttl}
}

func (c *redisDetailCache) Get(ctx context.Context, placeID string) (*maps.PlaceDetail, bool) {
	raw, err := c.client.Get(ctx, placeDetailKeyFormat+placeID).Result()
	if err != nil {
		return nil, false
	}
	var detail maps.PlaceDetail
	if err := json.Unmarshal([]byte(raw), &detail); err != nil {
		return nil, false
	}
	return &detail, true
}

func (c *redisDetailCache) Set(ctx context.Context, placeID string, detail *maps.PlaceDetail) {
	data, err := json.Marshal(detail)
	if err != nil {
		return
	}
	c.client.Set(ctx, placeDetailKeyFormat+placeID, string(data), c.ttl)
}
