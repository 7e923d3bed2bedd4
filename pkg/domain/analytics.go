package domain

import "time"

// AnalyticsEvent is a product analytics event collected from clients.
type AnalyticsEvent struct {
	Name       string         `json:"name"`
	UserID     *UserID        `json:"userId,omitempty"`
	SessionID  string         `json:"sessionId,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}
