package pubsub_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"directorybolt/pkg/domain"
	eventspubsub "directorybolt/pkg/events/pubsub"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client, err := pubsub.NewClient(ctx, "directorybolt", option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	topic, err := client.CreateTopic(ctx, "directory-form-changes")
	require.NoError(t, err)

	p := eventspubsub.New(topic)
	t.Cleanup(p.Stop)

	event := domain.FormChangeEvent{
		SiteID:       "yelp-com",
		Level:        "CHANGE",
		ChangeTypes:  []domain.FormChangeType{domain.FormChangeForms, domain.FormChangeCaptcha},
		NewSignature: "abc",
		DetectedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	id, err := p.Publish(ctx, event)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, "yelp-com", msgs[0].Attributes["siteId"])
	require.Equal(t, "FORMS,CAPTCHA", msgs[0].Attributes["changeTypes"])

	var got domain.FormChangeEvent
	require.NoError(t, json.Unmarshal(msgs[0].Data, &got))
	require.Equal(t, event.ChangeTypes, got.ChangeTypes)
	require.Equal(t, "abc", got.NewSignature)
}

func TestPublisher_NoTopic(t *testing.T) {
	_, err := eventspubsub.New(nil).Publish(context.Background(), domain.FormChangeEvent{})
	require.Error(t, err)
}
