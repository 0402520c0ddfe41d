package cache

import (
	"context"
	"fmt"

	"nexus-tube/infrastructure/configuration"
	"nexus-tube/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// NewCache connects to Redis. A missing host means no cache is configured and
// returns (nil, nil) so callers fall back to the in-process store.
func NewCache(ctx context.Context, cfg configuration.RedisClient) (*redis.Client, error) {
	if cfg.Host == "" {
		logger.GetLogger().Info("Redis host not configured - using in-memory toasts")
		return nil, nil
	}
	port := cfg.Port
	if port == "" {
		port = "6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, port),
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	logger.GetLogger().WithField("addr", client.Options().Addr).Info("Redis client initialized successfully.")
	return client, nil
}
