package worker_test

import (
	"testing"
	"time"

	mockauth "directorybolt/internal/auth/mock"
	mockbilling "directorybolt/internal/billing/mock"
	mockenrich "directorybolt/internal/enrich/mock"
	mockqueue "directorybolt/internal/queue/mock"
	"directorybolt/internal/worker"
	mockworker "directorybolt/internal/worker/mock"
	mockstorage "directorybolt/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	options := worker.Options{
		MaxWorkers:      4,
		RequeueInterval: time.Minute,
		PurgeInterval:   time.Hour,
		EnrichInterval:  time.Hour,
	}

	t.Run("core jobs only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		periodic := worker.Register(river.NewWorkers(), worker.Deps{
			Storage: mockstorage.NewMockStorage(ctrl),
			Billing: mockbilling.NewMockService(ctrl),
			Queue:   mockqueue.NewMockService(ctrl),
			Auth:    mockauth.NewMockService(ctrl),
		}, options)
		require.Len(t, periodic, 2)
	})

	t.Run("optional jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		deps := worker.Deps{
			Storage:  mockstorage.NewMockStorage(ctrl),
			Billing:  mockbilling.NewMockService(ctrl),
			Queue:    mockqueue.NewMockService(ctrl),
			Auth:     mockauth.NewMockService(ctrl),
			Enricher: mockenrich.NewMockEnricher(ctrl),
			Monitor:  mockworker.NewMockFormMonitor(ctrl),
		}

		// monitoring is registered but not scheduled without an interval
		require.Len(t, worker.Register(river.NewWorkers(), deps, options), 3)

		options.MonitorInterval = 24 * time.Hour
		require.Len(t, worker.Register(river.NewWorkers(), deps, options), 4)
	})
}
