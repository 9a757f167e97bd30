package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// RedisCartAdapter stores each session's cart as a hash: field = item id,
// value = quantity. Entries are removed rather than set to zero, so the
// hash never holds a zero-quantity field.
type RedisCartAdapter struct {
	client *redis.Client
}

func NewRedisCartAdapter(client *redis.Client) *RedisCartAdapter {
	return &RedisCartAdapter{client: client}
}

func (r *RedisCartAdapter) AddOne(ctx context.Context, session, itemID string) error {
	key := cartKeyPrefix + session
	return r.client.HIncrBy(ctx, key, itemID, 1).Err()
}

func (r *RedisCartAdapter) SetQuantity(ctx context.Context, session, itemID string, quantity int) error {
	key := cartKeyPrefix + session

	if quantity <= 0 {
		return r.client.HDel(ctx, key, itemID).Err()
	}
	return r.client.HSet(ctx, key, itemID, quantity).Err()
}

func (r *RedisCartAdapter) Get(ctx context.Context, session string) (map[string]int, error) {
	key := cartKeyPrefix + session

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	cart := make(map[string]int, len(fields))
	for itemID, raw := range fields {
		qty, err := strconv.Atoi(raw)
		if err != nil || qty <= 0 {
			// Corrupted field: treat as absent rather than failing the read.
			continue
		}
		cart[itemID] = qty
	}
	return cart, nil
}

func (r *RedisCartAdapter) Clear(ctx context.Context, session string) error {
	return r.client.Del(ctx, cartKeyPrefix+session).Err()
}
