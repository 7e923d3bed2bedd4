// Package pubsub implements events.Publisher on Google Cloud Pub/Sub.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"directorybolt/pkg/domain"
	"directorybolt/pkg/events"

	"cloud.google.com/go/pubsub"
	"go.opentelemetry.io/otel"
)

// Publisher sends change events as JSON messages to one topic.
type Publisher struct {
	topic *pubsub.Topic
}

var _ events.Publisher = (*Publisher)(nil)

// New creates a Publisher for the topic.
func New(topic *pubsub.Topic) *Publisher {
	return &Publisher{topic: topic}
}

// Publish waits for the server to acknowledge the message.
func (p *Publisher) Publish(ctx context.Context, event domain.FormChangeEvent) (string, error) {
	if p.topic == nil {
		return "", fmt.Errorf("pubsub topic is not configured")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("could not marshal event: %w", err)
	}

	types := make([]string, 0, len(event.ChangeTypes))
	for _, t := range event.ChangeTypes {
		types = append(types, string(t))
	}

	msg := &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"siteId":      event.SiteID,
			"changeTypes": strings.Join(types, ","),
		},
	}
	otel.GetTextMapPropagator().Inject(ctx, carrier(msg.Attributes))

	id, err := p.topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("could not publish event: %w", err)
	}

	return id, nil
}

// Stop flushes pending messages.
func (p *Publisher) Stop() {
	if p.topic != nil {
		p.topic.Stop()
	}
}

// carrier adapts message attributes to propagation.TextMapCarrier.
type carrier map[string]string

func (c carrier) Get(key string) string { return c[key] }

func (c carrier) Set(key, value string) { c[key] = value }

func (c carrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}

	return keys
}
