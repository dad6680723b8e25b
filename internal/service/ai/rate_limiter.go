package ai

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the fallback requests-per-minute rate for LLM calls.
const DefaultRateLimit = 10

// RateLimiter throttles provider calls to a requests-per-minute rate.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perMinute requests per minute.
func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{}
	rl.SetLimit(perMinute)
	return rl
}

// SetLimit updates the rate. Non-positive values reset to the default.
func (r *RateLimiter) SetLimit(perMinute int) {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.limit = perMinute
	r.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
}

// GetLimit returns the current requests-per-minute rate.
func (r *RateLimiter) GetLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// Wait blocks until the next request is allowed or the context is done.
// The first call after construction does not block.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	limiter := r.limiter
	r.mu.Unlock()
	return limiter.Wait(ctx)
}
