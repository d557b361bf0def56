package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daehokang/roomcast/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "socket:"

// RedisRegistry stores connection bindings as plain keys. A zero ttl stores
// the binding without expiry, so it lives until Unbind.
type RedisRegistry struct {
	rdb *redis.Client
}

func NewRedisRegistry(rdb *redis.Client) *RedisRegistry {
	return &RedisRegistry{rdb: rdb}
}

func key(connID string) string {
	return keyPrefix + connID
}

func (r *RedisRegistry) Bind(ctx context.Context, connID, userID string, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, key(connID), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to bind connection %s: %w", connID, err)
	}
	return nil
}

func (r *RedisRegistry) Resolve(ctx context.Context, connID string) (string, error) {
	userID, err := r.rdb.Get(ctx, key(connID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrBindingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve connection %s: %w", connID, err)
	}
	return userID, nil
}

func (r *RedisRegistry) Unbind(ctx context.Context, connID string) error {
	if err := r.rdb.Del(ctx, key(connID)).Err(); err != nil {
		return fmt.Errorf("failed to unbind connection %s: %w", connID, err)
	}
	return nil
}
