package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/redis"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
)

// RateLimitConfig configures a fixed-window rate limiter for a route class
type RateLimitConfig struct {
	// KeyPrefix separates buckets for different route classes
	KeyPrefix string
	// Window is the fixed window size. Counters hard-reset at the
	// window boundary, partial counts do not carry over.
	Window time.Duration
	// MaxRequests is the number of requests allowed per window
	MaxRequests int
	// SuccessExempt refunds requests that complete with a 2xx/3xx
	// status, so legitimate retries after a success are not penalized
	SuccessExempt bool
}

// CounterStore is the shared-counter backend for the rate limiter.
// The in-memory store covers a single process; the Redis store makes
// limits consistent across instances.
type CounterStore interface {
	// Incr increments the bucket for key and returns the new count and
	// the time remaining until the window resets
	Incr(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
	// Decr undoes one increment, used for success-exempt refunds
	Decr(ctx context.Context, key string) error
}

// RateLimit rejects requests over the configured budget with 429
func RateLimit(store CounterStore, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", cfg.KeyPrefix, c.ClientIP())

		count, resetIn, err := store.Incr(c.Request.Context(), key, cfg.Window)
		if err != nil {
			// Fail open: a broken counter backend must not take the
			// whole API down
			c.Next()
			return
		}

		remaining := int64(cfg.MaxRequests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.MaxRequests) {
			retryAfter := int(resetIn.Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.AbortError(c, http.StatusTooManyRequests, "RATE_LIMITED",
				fmt.Sprintf("Too many requests, please try again in %d seconds", retryAfter))
			return
		}

		c.Next()

		if cfg.SuccessExempt && c.Writer.Status() < http.StatusBadRequest {
			// Refund on success so only failed attempts burn budget
			_ = store.Decr(c.Request.Context(), key)
		}
	}
}

type bucket struct {
	windowStart time.Time
	count       int64
}

// MemoryCounterStore is a mutex-guarded in-process counter store
type MemoryCounterStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewMemoryCounterStore creates an in-process counter store and starts a
// janitor that drops stale buckets
func NewMemoryCounterStore() *MemoryCounterStore {
	s := &MemoryCounterStore{buckets: make(map[string]*bucket)}
	go s.janitor()
	return s
}

// Incr implements CounterStore
func (s *MemoryCounterStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok || now.Sub(b.windowStart) > window {
		b = &bucket{windowStart: now}
		s.buckets[key] = b
	}
	b.count++

	resetIn := window - now.Sub(b.windowStart)
	if resetIn < 0 {
		resetIn = 0
	}
	return b.count, resetIn, nil
}

// Decr implements CounterStore
func (s *MemoryCounterStore) Decr(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.buckets[key]; ok && b.count > 0 {
		b.count--
	}
	return nil
}

func (s *MemoryCounterStore) janitor() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-1 * time.Hour)
		s.mu.Lock()
		for key, b := range s.buckets {
			if b.windowStart.Before(cutoff) {
				delete(s.buckets, key)
			}
		}
		s.mu.Unlock()
	}
}

// RedisCounterStore shares rate-limit counters across instances
type RedisCounterStore struct {
	client *redis.Client
}

// NewRedisCounterStore creates a Redis-backed counter store
func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

// Incr implements CounterStore. The key TTL doubles as the window
// boundary: expiry starts a fresh bucket. Any key found without a TTL
// gets one, so a counter can never outlive its window.
func (s *RedisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if ttl < 0 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		ttl = window
	}
	return count, ttl, nil
}

// A refund must not recreate a bucket that already expired: a bare DECR
// would leave a key with no TTL, freezing that client's window.
const refundScript = `if redis.call("EXISTS", KEYS[1]) == 1 then return redis.call("DECR", KEYS[1]) end
return 0`

// Decr implements CounterStore
func (s *RedisCounterStore) Decr(ctx context.Context, key string) error {
	return s.client.Eval(ctx, refundScript, []string{key}).Err()
}
