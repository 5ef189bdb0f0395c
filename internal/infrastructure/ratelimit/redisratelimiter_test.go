package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})
	return client
}

// tickingClock advances one millisecond per call.
func tickingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

func TestQuota(t *testing.T) {
	assert.Equal(t, Quota{Limit: 20, Window: time.Minute}, PerMinute(20))
	assert.False(t, PerMinute(0).Enabled())
	assert.False(t, Quota{Limit: 1}.Enabled())
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	limiter.now = tickingClock(time.Now())
	ctx := context.Background()
	key := "ai:chat:client:c1"

	for i := range 3 {
		allowed, remaining, err := limiter.Allow(ctx, key, PerMinute(3))
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 2-i, remaining)
	}

	// rejected requests do not extend the window
	for range 3 {
		allowed, remaining, err := limiter.Allow(ctx, key, PerMinute(3))
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
	}
}

func TestRedisRateLimiter_WindowSlides(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	now := time.Now()
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	allowed, _, err := limiter.Allow(ctx, "ai:ticket:admin", PerMinute(1))
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, _, err = limiter.Allow(ctx, "ai:ticket:admin", PerMinute(1))
	require.NoError(t, err)
	require.False(t, allowed)

	now = now.Add(time.Minute + time.Second)
	allowed, _, err = limiter.Allow(ctx, "ai:ticket:admin", PerMinute(1))
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_SubjectsAreIndependent(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	limiter.now = tickingClock(time.Now())
	ctx := context.Background()

	allowed, _, err := limiter.Allow(ctx, "ai:chat:client:c1", PerMinute(1))
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, _, err = limiter.Allow(ctx, "ai:chat:client:c2", PerMinute(1))
	require.NoError(t, err)
	assert.True(t, allowed, "c2 has its own budget")

	allowed, _, err = limiter.Allow(ctx, "ai:chat:client:c1", PerMinute(1))
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisRateLimiter_DisabledQuotaSkipsRedis(t *testing.T) {
	limiter := NewRedisRateLimiter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))

	allowed, _, err := limiter.Allow(context.Background(), "ai:chat:admin", PerMinute(0))
	require.NoError(t, err)
	assert.True(t, allowed)
}
