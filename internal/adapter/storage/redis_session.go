package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const adminSessionKeyPrefix = "admin:session:"

// RedisSessionAdapter persists the admin authenticated flag as the
// literal "true" under the session token. No TTL: sessions live until
// logout.
type RedisSessionAdapter struct {
	client *redis.Client
}

func NewRedisSessionAdapter(client *redis.Client) *RedisSessionAdapter {
	return &RedisSessionAdapter{client: client}
}

func (r *RedisSessionAdapter) Put(ctx context.Context, token string) error {
	return r.client.Set(ctx, adminSessionKeyPrefix+token, "true", 0).Err()
}

func (r *RedisSessionAdapter) Check(ctx context.Context, token string) (bool, error) {
	val, err := r.client.Get(ctx, adminSessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "true", nil
}

func (r *RedisSessionAdapter) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, adminSessionKeyPrefix+token).Err()
}
