package middleware

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"placefinder/pkg/utils"
)

// RateLimiter counts requests per caller in a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type redisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisRateLimiter counts in redis so the limit holds across
// replicas.
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) RateLimiter {
	return &redisRateLimiter{client: client, limit: limit, window: window}
}

func (r *redisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "rate_limit:" + key

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		r.client.Expire(ctx, redisKey, r.window)
	}
	return count <= int64(r.limit), nil
}

type memoryRateLimiter struct {
	mu      sync.Mutex
	counts  map[string]int
	limit   int
	window  time.Duration
	resetAt time.Time
}

// NewMemoryRateLimiter is the single-process fallback when redis is not
// configured.
func NewMemoryRateLimiter(limit int, window time.Duration) RateLimiter {
	return &memoryRateLimiter{
		counts:  make(map[string]int),
		limit:   limit,
		window:  window,
		resetAt: time.Now().Add(window),
	}
}

func (m *memoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if now.After(m.resetAt) {
		m.counts = make(map[string]int)
		m.resetAt = now.Add(m.window)
	}

	m.counts[key]++
	return m.counts[key] <= m.limit, nil
}

// RateLimitMiddleware throttles by client IP. A limiter failure lets the
// request through rather than taking the API down with it.
func RateLimitMiddleware(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("rate limiter unavailable, allowing request: %v", err)
			c.Next()
			return
		}
		if !allowed {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
