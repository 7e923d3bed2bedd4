// Package worker runs the background jobs of the service on a River queue.
package worker

import (
	"context"
	"fmt"
	"time"

	"directorybolt/internal/auth"
	"directorybolt/internal/billing"
	"directorybolt/internal/config"
	"directorybolt/internal/enrich"
	"directorybolt/internal/formmap"
	"directorybolt/internal/queue"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Deps are the services the workers call into. Enricher and Monitor are
// optional; their jobs are not registered when nil.
type Deps struct {
	Storage  storage.Storage
	Billing  billing.Service
	Queue    queue.Service
	Auth     auth.Service
	Enricher enrich.Enricher
	Monitor  FormMonitor
}

// Options configure the River client.
type Options struct {
	MaxWorkers      int
	RequeueInterval time.Duration
	PurgeInterval   time.Duration
	// MonitorInterval schedules form monitoring; zero disables it.
	MonitorInterval time.Duration
	// EnrichInterval schedules authority enrichment; zero disables it.
	EnrichInterval time.Duration
	// EnrichBackoff is the snooze of a rate limited enrichment without a reset time.
	EnrichBackoff time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:      cfg.Queue.MaxWorkers,
		RequeueInterval: cfg.Queue.RequeueInterval,
		PurgeInterval:   cfg.Queue.SessionPurgeInterval,
		MonitorInterval: cfg.Monitor.Interval,
		EnrichInterval:  time.Hour,
		EnrichBackoff:   cfg.SEO.RateLimitBackoff,
	}
}

// Register adds a worker for every job kind the dependencies can serve and
// returns the periodic jobs that go with them.
func Register(workers *river.Workers, deps Deps, options Options) []*river.PeriodicJob {
	river.AddWorker(workers, NewFulfilWorker(deps.Billing))
	river.AddWorker(workers, NewRequeueStaleWorker(deps.Queue))
	river.AddWorker(workers, NewPurgeSessionsWorker(deps.Auth))

	periodic := []*river.PeriodicJob{
		newPeriodicJob(options.RequeueInterval, queue.RequeueStaleArgs{}),
		newPeriodicJob(options.PurgeInterval, auth.PurgeSessionsArgs{}),
	}

	if deps.Enricher != nil {
		river.AddWorker(workers, NewEnrichWorker(deps.Enricher, options.EnrichBackoff))
		river.AddWorker(workers, NewScheduleEnrichWorker(deps.Enricher))
		if options.EnrichInterval > 0 {
			periodic = append(periodic, newPeriodicJob(options.EnrichInterval, enrich.ScheduleArgs{}))
		}
	}

	if deps.Monitor != nil {
		river.AddWorker(workers, NewMonitorWorker(deps.Storage, deps.Monitor))
		river.AddWorker(workers, NewScheduleMonitorWorker(deps.Storage))
		if options.MonitorInterval > 0 {
			periodic = append(periodic, newPeriodicJob(options.MonitorInterval, formmap.ScheduleMonitorArgs{}))
		}
	}

	return periodic
}

func newPeriodicJob(interval time.Duration, args river.JobArgs) *river.PeriodicJob {
	return river.NewPeriodicJob(
		river.PeriodicInterval(interval),
		func() (river.JobArgs, *river.InsertOpts) {
			return args, nil
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	)
}

// Start creates the River client for dbPool and starts working jobs.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	periodic := Register(workers, deps, options)

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(options.MaxWorkers, 1)},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
