// Package analytics buffers product analytics events in memory and writes
// them to Postgres in batches.
package analytics

import (
	"context"

	"directorybolt/pkg/domain"
)

// Tracker accepts analytics events.
//
//go:generate mockgen -package mockanalytics -source=interface.go -destination=mock/mockanalytics.go *
type Tracker interface {
	// Track validates and buffers events. Nothing is written synchronously.
	// A closed tracker rejects events with UNAVAILABLE.
	Track(ctx context.Context, events ...domain.AnalyticsEvent) error
}

// Sink persists a batch of events.
type Sink interface {
	Write(ctx context.Context, events []domain.AnalyticsEvent) error
}
