package worker_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"directorybolt/internal/billing"
	mockbilling "directorybolt/internal/billing/mock"
	"directorybolt/internal/worker"
	"directorybolt/pkg/serrors"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFulfilWorker_Work(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		cancelled bool
	}{
		{name: "fulfilled"},
		{name: "unknown purchase", err: serrors.With(serrors.ErrNotFound, "purchase not found"), cancelled: true},
		{name: "malformed id", err: serrors.With(serrors.ErrBadRequest, "invalid purchase id"), cancelled: true},
		{name: "not paid", err: serrors.With(serrors.ErrConflict, "purchase is pending"), cancelled: true},
		{
			name:      "tier allowance used up",
			err:       fmt.Errorf("could not enqueue customer: %w", serrors.With(serrors.ErrLimitExceeded, "directory limit of tier starter reached")),
			cancelled: true,
		},
		{name: "free tier", err: serrors.With(serrors.ErrPaymentRequired, "tier free cannot be queued"), cancelled: true},
		{name: "transient", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mockbilling.NewMockService(gomock.NewController(t))
			w := worker.NewFulfilWorker(svc)

			args := billing.FulfilArgs{PurchaseID: "0b8f0d4e-8d4c-4a8e-9a3b-6c1d2e3f4a5b", Email: "owner@example.com"}
			svc.EXPECT().Fulfil(gomock.Any(), args).Return(tt.err)

			err := w.Work(context.Background(), &river.Job[billing.FulfilArgs]{
				JobRow: &rivertype.JobRow{ID: 7},
				Args:   args,
			})
			if tt.err == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.err)
			var cancelErr *river.JobCancelError
			require.Equal(t, tt.cancelled, errors.As(err, &cancelErr))
		})
	}
}
