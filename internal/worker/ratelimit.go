package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"directorybolt/pkg/logger"
	"directorybolt/pkg/metrics"
	"directorybolt/pkg/seometrics"

	"go.uber.org/zap"
)

// rateLimiter shares an upstream API budget between concurrent jobs.
//
// # Rate limiting overview
//
// The limiter tracks the last known upstream rate-limit status (last) and the
// number of requests currently in flight (inFlight). Before calling the API,
// reserve takes a slot from the current budget. The effective remaining
// budget is computed as:
//
//	remaining := last.Remaining
//	if now > last.ResetAt { remaining = last.Limit }
//
// A request may start if remaining - inFlight > 0. When there is no budget
// left, reserve waits until either the ResetAt time is reached or another
// in-flight request finishes and signals finishedCh.
//
// After a request completes, finished is called with the status gathered
// from the response. It decrements inFlight, wakes one waiter without
// blocking and merges the status: a new ResetAt is always adopted, otherwise
// Remaining is only replaced when it decreases.
//
// Before the first response the limiter assumes Limit=1, Remaining=1 and a
// far-future ResetAt, so exactly one trial request goes through.
type rateLimiter struct {
	provider string

	// mu protects inFlight and last.
	mu       sync.Mutex
	inFlight int
	last     *seometrics.RateLimitStatus
	// finishedCh is unbuffered; sends are dropped when nobody waits.
	finishedCh chan struct{}
}

func newRateLimiter(provider string) *rateLimiter {
	return &rateLimiter{
		provider:   provider,
		finishedCh: make(chan struct{}),
	}
}

// finished releases a slot and records the status of the finished request.
func (r *rateLimiter) finished(ctx context.Context, status seometrics.RateLimitStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inFlight > 0 {
		r.inFlight--
	}

	select {
	case r.finishedCh <- struct{}{}:
	default:
	}

	// no rate-limit headers, keep the current view
	if status.ResetAt.IsZero() {
		return
	}

	adopt := r.last == nil ||
		!r.last.ResetAt.Equal(status.ResetAt) ||
		status.Remaining < r.last.Remaining
	if !adopt {
		return
	}

	r.last = &status
	logger.Debug(ctx, "received rate limit status",
		zap.Int("limit", status.Limit),
		zap.Int("remaining", status.Remaining),
		zap.Time("resetAt", status.ResetAt),
		zap.Int("inFlight", r.inFlight))
}

// exhausted returns a status with no budget left for the next d, keeping the
// last known limit.
func (r *rateLimiter) exhausted(d time.Duration) seometrics.RateLimitStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := 1
	if r.last != nil && r.last.Limit > 0 {
		limit = r.last.Limit
	}

	return seometrics.RateLimitStatus{Limit: limit, Remaining: 0, ResetAt: time.Now().Add(d)}
}

// reserve takes one unit of budget or blocks until one is available or ctx
// is done.
func (r *rateLimiter) reserve(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.ObserveRateLimitWait(r.provider, time.Since(start))
	}()

	for {
		r.mu.Lock()

		if r.last == nil {
			r.last = &seometrics.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := r.last.Remaining
		if time.Now().UTC().After(r.last.ResetAt) {
			remaining = r.last.Limit
		}

		if remaining-r.inFlight > 0 {
			r.inFlight++
			r.mu.Unlock()

			return nil
		}

		resetAt := r.last.ResetAt
		limit := r.last.Limit
		inFlight := r.inFlight
		r.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Int("limit", limit),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-r.finishedCh:
		case <-time.After(time.Until(resetAt)):
		}
	}
}
