package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"directorybolt/internal/enrich"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// EnrichWorker fetches directory authority scores without exceeding the
// provider's rate limit. Concurrent jobs share one rateLimiter.
//
// Unknown directories and directories without a URL cancel the job. A rate
// limited call snoozes the job until the window resets, or for backoff when
// the provider did not report a reset time.
type EnrichWorker struct {
	river.WorkerDefaults[enrich.JobArgs]

	enricher enrich.Enricher
	limiter  *rateLimiter
	backoff  time.Duration
}

const defaultEnrichBackoff = time.Minute

// NewEnrichWorker constructs an EnrichWorker using the provided enricher.
func NewEnrichWorker(enricher enrich.Enricher, backoff time.Duration) *EnrichWorker {
	if backoff <= 0 {
		backoff = defaultEnrichBackoff
	}

	return &EnrichWorker{
		enricher: enricher,
		limiter:  newRateLimiter("seo"),
		backoff:  backoff,
	}
}

func (w *EnrichWorker) Work(ctx context.Context, job *river.Job[enrich.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("directoryId", job.Args.DirectoryID))

	if err := w.limiter.reserve(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	rl, err := w.enricher.Enrich(ctx, job.Args.DirectoryID)
	if errors.Is(err, serrors.ErrRateLimited) && !rl.ResetAt.After(time.Now()) {
		rl = w.limiter.exhausted(w.backoff)
	}
	w.limiter.finished(ctx, rl)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error enriching directory", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(time.Until(rl.ResetAt)) //nolint: wrapcheck
		}

		return fmt.Errorf("could not enrich directory: %w", err)
	}

	return nil
}

// ScheduleEnrichWorker enqueues enrichment for stale directories.
type ScheduleEnrichWorker struct {
	river.WorkerDefaults[enrich.ScheduleArgs]

	enricher enrich.Enricher
}

func NewScheduleEnrichWorker(enricher enrich.Enricher) *ScheduleEnrichWorker {
	return &ScheduleEnrichWorker{enricher: enricher}
}

func (w *ScheduleEnrichWorker) Work(ctx context.Context, _ *river.Job[enrich.ScheduleArgs]) error {
	if _, err := w.enricher.EnqueueStale(ctx); err != nil {
		return fmt.Errorf("could not enqueue stale directories: %w", err)
	}

	return nil
}
