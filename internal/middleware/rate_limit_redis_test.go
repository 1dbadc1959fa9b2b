package middleware

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/tasfirul8269/frooxi-backend/internal/redis"
)

func newTestRedisStore(t *testing.T) (*RedisCounterStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("miniredis port: %v", err)
	}
	client, err := redis.NewClient(context.Background(), &redis.Config{
		Host:         mr.Host(),
		Port:         port,
		DialTimeout:  time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return NewRedisCounterStore(client), mr
}

func TestRedisCounterStore_Incr(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, resetIn, err := store.Incr(ctx, "k", time.Minute)
		if err != nil {
			t.Fatalf("Incr: %v", err)
		}
		if count != want {
			t.Errorf("count = %d, want %d", count, want)
		}
		if resetIn <= 0 || resetIn > time.Minute {
			t.Errorf("resetIn = %v, want within (0, 1m]", resetIn)
		}
	}

	if err := store.Decr(ctx, "k"); err != nil {
		t.Fatalf("Decr: %v", err)
	}
	count, _, _ := store.Incr(ctx, "k", time.Minute)
	if count != 3 {
		t.Errorf("count after refund = %d, want 3", count)
	}
}

func TestRedisCounterStore_RefundAfterWindowExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()
	const key = "ratelimit:auth:client"

	if _, _, err := store.Incr(ctx, key, time.Minute); err != nil {
		t.Fatalf("Incr: %v", err)
	}

	// The window elapses while the request is still in flight
	mr.FastForward(2 * time.Minute)
	if mr.Exists(key) {
		t.Fatal("bucket should have expired")
	}

	// The refund must not resurrect the expired bucket
	if err := store.Decr(ctx, key); err != nil {
		t.Fatalf("Decr: %v", err)
	}
	if mr.Exists(key) {
		t.Fatal("refund recreated an expired bucket")
	}

	// The next window starts clean, with its expiry armed
	count, resetIn, err := store.Incr(ctx, key, time.Minute)
	if err != nil {
		t.Fatalf("Incr: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if resetIn != time.Minute {
		t.Errorf("resetIn = %v, want 1m", resetIn)
	}
	if mr.TTL(key) <= 0 {
		t.Error("new bucket has no expiry")
	}
}

func TestRedisCounterStore_IncrRearmsMissingTTL(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()
	const key = "ratelimit:api:client"

	// A counter that somehow lost its expiry must get a fresh one
	mr.Set(key, "3")

	count, resetIn, err := store.Incr(ctx, key, time.Minute)
	if err != nil {
		t.Fatalf("Incr: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	if resetIn != time.Minute {
		t.Errorf("resetIn = %v, want 1m", resetIn)
	}
	if mr.TTL(key) <= 0 {
		t.Error("counter still has no expiry")
	}
}
