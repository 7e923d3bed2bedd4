// Package events publishes submission form change events to other systems.
//
//go:generate mockgen -package mockevents -source=events.go -destination=mock/mockevents.go
package events

import (
	"context"

	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"

	"go.uber.org/zap"
)

// Publisher announces a detected change and returns the message id, if the
// transport assigns one.
type Publisher interface {
	Publish(ctx context.Context, event domain.FormChangeEvent) (string, error)
}

// LogPublisher writes events to the log only.
type LogPublisher struct{}

var _ Publisher = LogPublisher{}

func (LogPublisher) Publish(ctx context.Context, event domain.FormChangeEvent) (string, error) {
	types := make([]string, 0, len(event.ChangeTypes))
	for _, t := range event.ChangeTypes {
		types = append(types, string(t))
	}

	logger.Warn(ctx, "submission form changed",
		zap.String("siteId", event.SiteID),
		zap.Strings("changeTypes", types),
		zap.String("previousSignature", event.PreviousSignature),
		zap.String("newSignature", event.NewSignature),
		zap.String("resolvedUrl", event.NewResolvedURL),
	)

	return "", nil
}
