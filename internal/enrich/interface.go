package enrich

import (
	"context"

	"directorybolt/pkg/seometrics"
)

//go:generate mockgen -package mockenrich -source=interface.go -destination=mock/mockenrich.go *
type Enricher interface {
	// Enqueue adds an enrichment job per directory and returns how many were
	// new.
	Enqueue(ctx context.Context, directoryIDs ...string) (int, error)
	// EnqueueStale enqueues every active directory whose authority was never
	// fetched or is older than StaleAfter.
	EnqueueStale(ctx context.Context) (int, error)
	// Enrich fetches the authority of a directory, stores it and re-derives
	// the dependent attributes. The provider's rate-limit status is returned
	// even on failure.
	Enrich(ctx context.Context, directoryID string) (seometrics.RateLimitStatus, error)
}
