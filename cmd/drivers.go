package main

import (
	"context"
	"fmt"
	"net/http"

	"directorybolt/internal/config"
	"directorybolt/internal/enrich"
	"directorybolt/pkg/blob"
	"directorybolt/pkg/blob/gcs"
	"directorybolt/pkg/blob/local"
	"directorybolt/pkg/events"
	eventspubsub "directorybolt/pkg/events/pubsub"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/seometrics/moz"
	"directorybolt/pkg/storage"
	"directorybolt/pkg/storage/postgres"

	"cloud.google.com/go/pubsub"
	gcstorage "cloud.google.com/go/storage"
	"go.uber.org/zap"
)

// getPostgres connects to the configured database. Failing to connect is
// fatal for every command, the returned function closes the pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getBlobStore opens the configured artifact store. The returned function
// releases its client.
func getBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, func(), error) {
	switch cfg.Blob.Driver {
	case "", "local":
		store, err := local.New(cfg.Blob.LocalDir)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open local blob store: %w", err)
		}

		return store, func() {}, nil
	case "gcs":
		client, err := gcstorage.NewClient(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("could not create gcs client: %w", err)
		}
		store, err := gcs.New(client, cfg.Blob.Bucket, cfg.Blob.Prefix)
		if err != nil {
			_ = client.Close()

			return nil, nil, fmt.Errorf("could not open gcs blob store: %w", err)
		}

		return store, func() {
			if err := client.Close(); err != nil {
				logger.Warn(ctx, "could not close gcs client", zap.Error(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown blob driver %q", cfg.Blob.Driver)
	}
}

// getPublisher opens the configured change event publisher. The returned
// function flushes and releases it.
func getPublisher(ctx context.Context, cfg *config.Config) (events.Publisher, func(), error) {
	switch cfg.Events.Driver {
	case "", "log":
		return events.LogPublisher{}, func() {}, nil
	case "pubsub":
		client, err := pubsub.NewClient(ctx, cfg.Events.ProjectID)
		if err != nil {
			return nil, nil, fmt.Errorf("could not create pubsub client: %w", err)
		}
		topic := client.Topic(cfg.Events.Topic)

		return eventspubsub.New(topic), func() {
			topic.Stop()
			if err := client.Close(); err != nil {
				logger.Warn(ctx, "could not close pubsub client", zap.Error(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}

// getEnricher returns nil when no SEO provider credentials are configured.
func getEnricher(cfg *config.Config, strg storage.Storage) enrich.Enricher {
	if cfg.SEO.AccessID == "" || cfg.SEO.SecretKey == "" {
		return nil
	}

	client := moz.New(&http.Client{Timeout: cfg.SEO.Timeout}, moz.NewOptions(cfg))

	return enrich.New(strg, client, enrich.NewOptions(cfg))
}
