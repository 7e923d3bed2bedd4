package worker

import (
	"context"
	"fmt"

	"directorybolt/internal/auth"
	"directorybolt/internal/queue"
	"directorybolt/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RequeueStaleWorker releases queue jobs stuck in processing.
type RequeueStaleWorker struct {
	river.WorkerDefaults[queue.RequeueStaleArgs]

	queue queue.Service
}

func NewRequeueStaleWorker(queue queue.Service) *RequeueStaleWorker {
	return &RequeueStaleWorker{queue: queue}
}

func (w *RequeueStaleWorker) Work(ctx context.Context, _ *river.Job[queue.RequeueStaleArgs]) error {
	res, err := w.queue.RequeueStale(ctx)
	if err != nil {
		return fmt.Errorf("could not requeue stale jobs: %w", err)
	}
	if res.Requeued > 0 || res.Failed > 0 {
		logger.Info(ctx, "stale queue jobs released", zap.Int64("requeued", res.Requeued), zap.Int64("failed", res.Failed))
	}

	return nil
}

// PurgeSessionsWorker deletes expired login sessions.
type PurgeSessionsWorker struct {
	river.WorkerDefaults[auth.PurgeSessionsArgs]

	auth auth.Service
}

func NewPurgeSessionsWorker(auth auth.Service) *PurgeSessionsWorker {
	return &PurgeSessionsWorker{auth: auth}
}

func (w *PurgeSessionsWorker) Work(ctx context.Context, _ *river.Job[auth.PurgeSessionsArgs]) error {
	n, err := w.auth.PurgeExpired(ctx)
	if err != nil {
		return fmt.Errorf("could not purge sessions: %w", err)
	}
	logger.Debug(ctx, "expired sessions purged", zap.Int64("count", n))

	return nil
}
