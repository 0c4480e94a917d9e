package cachefx

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"

	"placefinder/internal/infra"
	"placefinder/pkg/cache"
	"placefinder/pkg/config"
	"placefinder/pkg/middleware"
)

var Module = fx.Provide(
	provideRedisClient,
	provideDetailCache,
	provideRateLimiter,
)

func provideRedisClient(cfg *config.Config) *redis.Client {
	return infra.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
}

func provideDetailCache(cfg *config.Config, client *redis.Client) cache.DetailCache {
	if client != nil {
		return cache.NewRedisDetailCache(client, cfg.CacheTTL)
	}
	return cache.NewInMemoryDetailCache(cfg.CacheTTL)
}

func provideRateLimiter(cfg *config.Config, client *redis.Client) middleware.RateLimiter {
	if client != nil {
		return middleware.NewRedisRateLimiter(client, cfg.RateLimitRequests, cfg.RateLimitWindow)
	}
	return middleware.NewMemoryRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
}
