// Package seometrics defines the client used to look up authority metrics of
// directory websites.
package seometrics

import (
	"context"
	"time"
)

// RateLimitStatus describes the API budget reported by the provider.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the window resets; zero when unknown.
}

// URLMetrics are the authority scores of one site.
type URLMetrics struct {
	Target          string
	DomainAuthority int
	PageAuthority   int
	SpamScore       int
}

// Client looks up authority metrics.
//
//go:generate mockgen -package mockseometrics -source=interface.go -destination=mock/mockseometrics.go *
type Client interface {
	// URLMetrics fetches the metrics of target along with the current
	// rate-limit status. The status is returned even when the call fails.
	URLMetrics(ctx context.Context, target string) (*URLMetrics, RateLimitStatus, error)
}
