// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"salonbook/config"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to the configured Redis server on the given DB
// and pings it.
func NewRedisClient(cfg config.Config, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis db %d: %w", db, err)
	}
	return client, nil
}

// AuthCacheKey returns the authorization cache key for a token hash.
func AuthCacheKey(tokenHash string) string {
	return AuthCachePrefix + tokenHash
}
