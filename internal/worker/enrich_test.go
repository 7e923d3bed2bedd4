package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"directorybolt/internal/enrich"
	mockenrich "directorybolt/internal/enrich/mock"
	"directorybolt/internal/worker"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/seometrics"
	"directorybolt/pkg/serrors"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func enrichJob(id int64, directoryID string) *river.Job[enrich.JobArgs] {
	return &river.Job[enrich.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   enrich.JobArgs{DirectoryID: directoryID},
	}
}

const testBackoff = 2 * time.Second

func newEnrichWorker(t *testing.T) (*mockenrich.MockEnricher, *worker.EnrichWorker) {
	t.Helper()

	m := mockenrich.NewMockEnricher(gomock.NewController(t))

	return m, worker.NewEnrichWorker(m, testBackoff)
}

func budget(limit, remaining int, resetIn time.Duration) seometrics.RateLimitStatus {
	return seometrics.RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: time.Now().Add(resetIn)}
}

// waitFor fails the test unless ch is closed within d.
func waitFor(t *testing.T, ch <-chan struct{}, d time.Duration, msg string) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(d):
		t.Fatal(msg)
	}
}

// stillBlocked fails the test if ch is closed within d.
func stillBlocked(t *testing.T, ch <-chan struct{}, d time.Duration, msg string) {
	t.Helper()

	select {
	case <-ch:
		t.Fatal(msg)
	case <-time.After(d):
	}
}

func TestEnrichWorker_Work(t *testing.T) {
	tests := []struct {
		name      string
		rl        seometrics.RateLimitStatus
		err       error
		wantErr   bool
		cancelled bool
		snoozed   bool
		// snooze bounds
		minSnooze time.Duration
		maxSnooze time.Duration
	}{
		{name: "success", rl: budget(100, 99, time.Minute)},
		{
			name:      "unknown directory is cancelled",
			err:       serrors.With(serrors.ErrNotFound, "gone"),
			wantErr:   true,
			cancelled: true,
		},
		{
			name:      "directory without url is cancelled",
			err:       serrors.With(serrors.ErrBadRequest, "no url"),
			wantErr:   true,
			cancelled: true,
		},
		{
			name:      "rate limited is snoozed",
			rl:        budget(100, 0, 1500*time.Millisecond),
			err:       serrors.With(serrors.ErrRateLimited, "slow down"),
			wantErr:   true,
			snoozed:   true,
			minSnooze: time.Second,
			maxSnooze: 1500 * time.Millisecond,
		},
		{
			name:      "rate limited without reset time backs off",
			err:       serrors.With(serrors.ErrRateLimited, "slow down"),
			wantErr:   true,
			snoozed:   true,
			minSnooze: testBackoff - 500*time.Millisecond,
			maxSnooze: testBackoff,
		},
		{
			name:      "rate limited with a past reset time backs off",
			rl:        budget(100, 0, -time.Minute),
			err:       serrors.With(serrors.ErrRateLimited, "slow down"),
			wantErr:   true,
			snoozed:   true,
			minSnooze: testBackoff - 500*time.Millisecond,
			maxSnooze: testBackoff,
		},
		{
			name:    "other errors are retried",
			rl:      budget(100, 100, time.Minute),
			err:     errors.New("boom"),
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, w := newEnrichWorker(t)
			m.EXPECT().Enrich(gomock.Any(), "dir").Return(tt.rl, tt.err)

			err := w.Work(context.Background(), enrichJob(int64(i+1), "dir"))
			if !tt.wantErr {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)

			var cancelErr *river.JobCancelError
			require.Equal(t, tt.cancelled, errors.As(err, &cancelErr))

			var snoozeErr *river.JobSnoozeError
			require.Equal(t, tt.snoozed, errors.As(err, &snoozeErr))
			if tt.snoozed {
				require.GreaterOrEqual(t, snoozeErr.Duration, tt.minSnooze)
				require.LessOrEqual(t, snoozeErr.Duration, tt.maxSnooze)
			}
		})
	}
}

func TestEnrichWorker_RateLimitWithoutResetHoldsOtherJobs(t *testing.T) {
	m, w := newEnrichWorker(t)

	m.EXPECT().Enrich(gomock.Any(), "limited").
		Return(seometrics.RateLimitStatus{}, serrors.With(serrors.ErrRateLimited, "429"))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, w.Work(context.Background(), enrichJob(1, "limited")), &snoozeErr)
	require.Positive(t, snoozeErr.Duration)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := w.Work(ctx, enrichJob(2, "held"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEnrichWorker_FirstRequestRunsAlone(t *testing.T) {
	m, w := newEnrichWorker(t)

	firstRunning := make(chan struct{})
	releaseFirst := make(chan struct{})
	nextRunning := make(chan struct{})

	m.EXPECT().Enrich(gomock.Any(), "first").
		DoAndReturn(func(context.Context, string) (seometrics.RateLimitStatus, error) {
			close(firstRunning)
			<-releaseFirst

			return budget(1, 1, time.Minute), nil
		})
	m.EXPECT().Enrich(gomock.Any(), "next").
		DoAndReturn(func(context.Context, string) (seometrics.RateLimitStatus, error) {
			close(nextRunning)

			return budget(1, 1, time.Minute), nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = w.Work(ctx, enrichJob(1, "first")) }()
	<-firstRunning
	go func() { _ = w.Work(ctx, enrichJob(2, "next")) }()

	stillBlocked(t, nextRunning, 100*time.Millisecond, "second job ran while the first request was in flight")
	close(releaseFirst)
	waitFor(t, nextRunning, 2*time.Second, "second job did not run after the first request finished")
}

func TestEnrichWorker_ConcurrencyFollowsRemainingBudget(t *testing.T) {
	m, w := newEnrichWorker(t)

	m.EXPECT().Enrich(gomock.Any(), "warmup").Return(budget(2, 2, time.Minute), nil)
	require.NoError(t, w.Work(context.Background(), enrichJob(1, "warmup")))

	running := map[string]chan struct{}{
		"a": make(chan struct{}),
		"b": make(chan struct{}),
		"c": make(chan struct{}),
	}
	release := map[string]chan struct{}{
		"a": make(chan struct{}),
		"b": make(chan struct{}),
	}

	// a leaves the budget at 2, so c fits once a is done even though b is still running.
	m.EXPECT().Enrich(gomock.Any(), "a").
		DoAndReturn(func(context.Context, string) (seometrics.RateLimitStatus, error) {
			close(running["a"])
			<-release["a"]

			return budget(2, 2, time.Minute), nil
		})
	m.EXPECT().Enrich(gomock.Any(), "b").
		DoAndReturn(func(context.Context, string) (seometrics.RateLimitStatus, error) {
			close(running["b"])
			<-release["b"]

			return budget(2, 0, time.Minute), nil
		})
	m.EXPECT().Enrich(gomock.Any(), "c").
		DoAndReturn(func(context.Context, string) (seometrics.RateLimitStatus, error) {
			close(running["c"])

			return budget(2, 1, time.Minute), nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = w.Work(ctx, enrichJob(2, "a")) }()
	go func() { _ = w.Work(ctx, enrichJob(3, "b")) }()
	waitFor(t, running["a"], time.Second, "a did not start")
	waitFor(t, running["b"], time.Second, "b did not start")

	go func() { _ = w.Work(ctx, enrichJob(4, "c")) }()
	stillBlocked(t, running["c"], 150*time.Millisecond, "c exceeded the remaining budget")

	close(release["a"])
	waitFor(t, running["c"], 2*time.Second, "c did not start after a finished")

	close(release["b"])
}

func TestEnrichWorker_WaitsForWindowReset(t *testing.T) {
	m, w := newEnrichWorker(t)

	window := 300 * time.Millisecond
	m.EXPECT().Enrich(gomock.Any(), "drain").Return(budget(5, 0, window), nil)
	require.NoError(t, w.Work(context.Background(), enrichJob(1, "drain")))

	started := time.Now()
	ran := make(chan struct{})
	m.EXPECT().Enrich(gomock.Any(), "after-reset").
		DoAndReturn(func(context.Context, string) (seometrics.RateLimitStatus, error) {
			close(ran)

			return budget(5, 4, time.Minute), nil
		})

	go func() { _ = w.Work(context.Background(), enrichJob(2, "after-reset")) }()

	waitFor(t, ran, 2*time.Second, "job did not run after the window reset")
	require.GreaterOrEqual(t, time.Since(started), window-75*time.Millisecond)
}

func TestEnrichWorker_FailureReleasesSlot(t *testing.T) {
	m, w := newEnrichWorker(t)

	failing := make(chan struct{})
	fail := make(chan struct{})
	nextRunning := make(chan struct{})

	m.EXPECT().Enrich(gomock.Any(), "fails").
		DoAndReturn(func(context.Context, string) (seometrics.RateLimitStatus, error) {
			close(failing)
			<-fail

			return budget(1, 1, time.Minute), errors.New("upstream 500")
		})
	m.EXPECT().Enrich(gomock.Any(), "next").
		DoAndReturn(func(context.Context, string) (seometrics.RateLimitStatus, error) {
			close(nextRunning)

			return budget(1, 1, time.Minute), nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = w.Work(ctx, enrichJob(1, "fails")) }()
	<-failing
	go func() { _ = w.Work(ctx, enrichJob(2, "next")) }()

	stillBlocked(t, nextRunning, 100*time.Millisecond, "second job ran before the first failed")
	close(fail)
	waitFor(t, nextRunning, 2*time.Second, "failed job did not release its slot")
}

func TestEnrichWorker_ReserveHonoursContext(t *testing.T) {
	m, w := newEnrichWorker(t)

	m.EXPECT().Enrich(gomock.Any(), "drain").Return(budget(1, 0, time.Hour), nil)
	require.NoError(t, w.Work(context.Background(), enrichJob(1, "drain")))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := w.Work(ctx, enrichJob(2, "blocked"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestScheduleEnrichWorker_Work(t *testing.T) {
	m := mockenrich.NewMockEnricher(gomock.NewController(t))
	w := worker.NewScheduleEnrichWorker(m)

	m.EXPECT().EnqueueStale(gomock.Any()).Return(3, nil)
	require.NoError(t, w.Work(context.Background(), &river.Job[enrich.ScheduleArgs]{JobRow: &rivertype.JobRow{ID: 1}}))

	m.EXPECT().EnqueueStale(gomock.Any()).Return(0, errors.New("db down"))
	require.ErrorContains(t, w.Work(context.Background(), &river.Job[enrich.ScheduleArgs]{JobRow: &rivertype.JobRow{ID: 2}}), "db down")
}
