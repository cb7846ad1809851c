package port

import (
	"context"
	"time"
)

// RateLimiter is a token bucket keyed by an arbitrary string.
type RateLimiter interface {
	Allow(ctx context.Context, key string, rate float64, burst int) (*RateLimitResult, error)
}

type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}
