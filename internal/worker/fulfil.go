package worker

import (
	"context"
	"errors"
	"fmt"

	"directorybolt/internal/billing"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// FulfilWorker grants paid purchases. Purchases that are unknown, malformed or
// not paid are cancelled instead of retried, as are purchases whose customer
// cannot be queued under the account's tier.
type FulfilWorker struct {
	river.WorkerDefaults[billing.FulfilArgs]

	billing billing.Service
}

func NewFulfilWorker(billing billing.Service) *FulfilWorker {
	return &FulfilWorker{billing: billing}
}

func (w *FulfilWorker) Work(ctx context.Context, job *river.Job[billing.FulfilArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("purchaseId", job.Args.PurchaseID))

	if err := w.billing.Fulfil(ctx, job.Args); err != nil {
		if isPermanent(err) {
			logger.Warn(ctx, "cancelling fulfilment", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error fulfilling purchase", zap.Error(err))

		return fmt.Errorf("could not fulfil purchase: %w", err)
	}

	return nil
}

func isPermanent(err error) bool {
	for _, kind := range []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrLimitExceeded,
		serrors.ErrPaymentRequired,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}

	return false
}
