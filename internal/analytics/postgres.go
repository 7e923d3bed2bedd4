package analytics

import (
	"context"
	"fmt"

	"directorybolt/pkg/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CopyFromer is the part of a pgx connection or pool used by PostgresSink.
type CopyFromer interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

var eventColumns = []string{"name", "user_id", "session_id", "properties", "occurred_at"} //nolint: gochecknoglobals

// PostgresSink writes events to the analytics_events table with COPY.
type PostgresSink struct {
	db CopyFromer
}

var _ Sink = (*PostgresSink)(nil)

// NewPostgresSink creates a sink over a pgx pool or connection.
func NewPostgresSink(db CopyFromer) *PostgresSink {
	return &PostgresSink{db: db}
}

func (s *PostgresSink) Write(ctx context.Context, events []domain.AnalyticsEvent) error {
	rows := make([][]any, 0, len(events))
	for _, e := range events {
		var userID any
		if e.UserID != nil {
			userID = uuid.UUID(*e.UserID)
		}
		var sessionID any
		if e.SessionID != "" {
			sessionID = e.SessionID
		}
		props := e.Properties
		if props == nil {
			props = map[string]any{}
		}

		rows = append(rows, []any{e.Name, userID, sessionID, props, e.OccurredAt})
	}

	n, err := s.db.CopyFrom(ctx, pgx.Identifier{"analytics_events"}, eventColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("could not copy analytics events: %w", err)
	}
	if n != int64(len(rows)) {
		return fmt.Errorf("copied %d of %d analytics events", n, len(rows))
	}

	return nil
}
