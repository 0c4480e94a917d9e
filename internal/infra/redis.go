package infra

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects to redis when an address is configured. Returns nil
// otherwise; callers fall back to in-process equivalents.
func InitRedis(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s, falling back to in-memory: %v", addr, err)
		return nil
	}

	log.Printf("connected to redis at %s", addr)
	return client
}
