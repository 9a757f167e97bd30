package storage

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisCart_AddOne(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisCartAdapter(client)
	session := "test-session-add"

	// Setup
	client.Del(ctx, "cart:"+session)

	if err := adapter.AddOne(ctx, session, "tshirts"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := adapter.AddOne(ctx, session, "tshirts"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := adapter.AddOne(ctx, session, "hoodies"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart, err := adapter.Get(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart["tshirts"] != 2 {
		t.Errorf("expected tshirts quantity 2, got %d", cart["tshirts"])
	}
	if cart["hoodies"] != 1 {
		t.Errorf("expected hoodies quantity 1, got %d", cart["hoodies"])
	}

	client.Del(ctx, "cart:"+session)
}

func TestRedisCart_SetQuantityZeroRemovesEntry(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisCartAdapter(client)
	session := "test-session-zero"

	client.Del(ctx, "cart:"+session)

	if err := adapter.SetQuantity(ctx, session, "tshirts", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := adapter.SetQuantity(ctx, session, "tshirts", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart, err := adapter.Get(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cart["tshirts"]; ok {
		t.Error("expected entry to be removed, found it in cart")
	}

	// The hash field itself must be gone, not stored as zero.
	exists, _ := client.HExists(ctx, "cart:"+session, "tshirts").Result()
	if exists {
		t.Error("expected hash field to be deleted")
	}

	client.Del(ctx, "cart:"+session)
}

func TestRedisCart_Clear(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisCartAdapter(client)
	session := "test-session-clear"

	client.Del(ctx, "cart:"+session)
	adapter.AddOne(ctx, session, "tshirts")
	adapter.AddOne(ctx, session, "hoodies")

	if err := adapter.Clear(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart, err := adapter.Get(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart) != 0 {
		t.Errorf("expected empty cart, got %v", cart)
	}
}

func TestRedisCart_MissingCartIsEmpty(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisCartAdapter(client)

	cart, err := adapter.Get(ctx, "never-seen-session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart) != 0 {
		t.Errorf("expected empty cart, got %v", cart)
	}
}

func TestRedisSession_PutCheckDelete(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisSessionAdapter(client)
	token := "test-token"

	client.Del(ctx, "admin:session:"+token)

	ok, err := adapter.Check(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected unknown token to be unauthenticated")
	}

	if err := adapter.Put(ctx, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Stored as the literal "true".
	val, _ := client.Get(ctx, "admin:session:"+token).Result()
	if val != "true" {
		t.Errorf("expected flag value %q, got %q", "true", val)
	}

	ok, err = adapter.Check(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected token to be authenticated after Put")
	}

	// No expiry on the session key.
	ttl, _ := client.TTL(ctx, "admin:session:"+token).Result()
	if ttl > 0 {
		t.Errorf("expected no TTL on session key, got %v", ttl)
	}

	if err := adapter.Delete(ctx, token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, _ = adapter.Check(ctx, token)
	if ok {
		t.Error("expected token to be unauthenticated after Delete")
	}
}
