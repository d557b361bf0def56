package db

import (
	"context"
	"fmt"

	"github.com/daehokang/roomcast/internal/infrastructure/configs"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(ctx context.Context, cfg *configs.RedisConfig) (*redis.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}
