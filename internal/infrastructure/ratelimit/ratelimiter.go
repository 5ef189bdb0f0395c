// Package ratelimit meters requests per key over a sliding window.
package ratelimit

import (
	"context"
	"time"
)

// Quota allows Limit requests per Window. A non-positive Limit disables it.
type Quota struct {
	Limit  int
	Window time.Duration
}

func PerMinute(n int) Quota {
	return Quota{Limit: n, Window: time.Minute}
}

func (q Quota) Enabled() bool {
	return q.Limit > 0 && q.Window > 0
}

type RateLimiter interface {
	// Allow records one request for key if the quota still has room and
	// reports how many requests remain in the current window.
	Allow(ctx context.Context, key string, quota Quota) (allowed bool, remaining int, err error)
}
