package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "nexus:ratelimit:"

// slidingWindow trims expired entries and admits the request only when the
// window has room, so rejected requests never consume quota. Scores are unix
// microseconds to stay inside Lua's exact integer range.
var slidingWindow = redis.NewScript(`
local key    = KEYS[1]
local now    = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit  = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
if count >= limit then
	return {0, 0}
end
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, math.ceil(window / 1000) + 1000)
return {1, limit - count - 1}
`)

// RedisRateLimiter keeps one sorted set of request timestamps per key, so
// quotas are shared by every process using the same Redis.
type RedisRateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

var _ RateLimiter = (*RedisRateLimiter)(nil)

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, quota Quota) (bool, int, error) {
	if !quota.Enabled() {
		return true, 0, nil
	}

	res, err := slidingWindow.Run(ctx, l.client,
		[]string{redisKey(key, quota.Window)},
		l.now().UnixMicro(),
		quota.Window.Microseconds(),
		quota.Limit,
		uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit check for %s: %w", key, err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("rate limit check for %s: unexpected reply %v", key, res)
	}
	return res[0] == 1, int(res[1]), nil
}

func redisKey(key string, window time.Duration) string {
	return keyPrefix + key + ":" + window.String()
}
