package redis

import (
	"context"
	"fmt"
	"time"

	"partner-dashboard-srv/config"
	"partner-dashboard-srv/pkg/redis"
)

const pingTimeout = 5 * time.Second

// Connect builds the session store client and pings it.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	client, err := redis.New(redis.Options{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis at %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return client, nil
}
