package translation

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultDelay is the pause before every request. The v2 endpoint throttles
// bursts of concurrent calls, so requests are spaced out.
const DefaultDelay = 50 * time.Millisecond

// Pacer decides how long to wait before the next request
type Pacer interface {
	Wait(ctx context.Context) error
}

// PacerFunc adapts a function to the Pacer interface
type PacerFunc func(ctx context.Context) error

// Wait calls f(ctx)
func (f PacerFunc) Wait(ctx context.Context) error {
	return f(ctx)
}

// FixedDelay sleeps for the same duration before every request
type FixedDelay time.Duration

// Wait blocks for the delay or until ctx is done
func (d FixedDelay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(time.Duration(d))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay never waits
var NoDelay Pacer = FixedDelay(0)

// RateLimit spaces requests with a token bucket holding a single token.
// It is safe for use by concurrent workers sharing one budget.
type RateLimit struct {
	limiter *rate.Limiter
}

// NewRateLimit allows at most perSecond requests per second
func NewRateLimit(perSecond float64) *RateLimit {
	return &RateLimit{
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Wait blocks until the next request is allowed
func (r *RateLimit) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
