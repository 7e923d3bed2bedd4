package analytics_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"directorybolt/internal/analytics"
	mockanalytics "directorybolt/internal/analytics/mock"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingSink stores written batches and fails while failing is set.
type recordingSink struct {
	mu      sync.Mutex
	failing bool
	batches [][]domain.AnalyticsEvent
}

func (s *recordingSink) Write(_ context.Context, events []domain.AnalyticsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return errors.New("database unavailable")
	}
	s.batches = append(s.batches, append([]domain.AnalyticsEvent(nil), events...))

	return nil
}

func (s *recordingSink) written() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, b := range s.batches {
		n += len(b)
	}

	return n
}

func named(names ...string) []domain.AnalyticsEvent {
	out := make([]domain.AnalyticsEvent, 0, len(names))
	for _, n := range names {
		out = append(out, domain.AnalyticsEvent{Name: n})
	}

	return out
}

func TestBuffer_TrackValidation(t *testing.T) {
	b := analytics.NewBuffer(&recordingSink{}, analytics.Options{BatchSize: 10, FlushInterval: time.Hour, MaxBuffer: 10})
	ctx := context.Background()

	require.NoError(t, b.Track(ctx))
	require.ErrorIs(t, b.Track(ctx, domain.AnalyticsEvent{Name: "  "}), serrors.ErrBadRequest)
	require.ErrorIs(t, b.Track(ctx, domain.AnalyticsEvent{Name: strings.Repeat("x", 65)}), serrors.ErrBadRequest)
	require.ErrorIs(t, b.Track(ctx, make([]domain.AnalyticsEvent, 501)...), serrors.ErrBadRequest)
	require.Zero(t, b.Len())

	events := []domain.AnalyticsEvent{{Name: " page_view "}}
	require.NoError(t, b.Track(ctx, events...))
	require.Equal(t, 1, b.Len())
	require.Equal(t, "page_view", events[0].Name)
	require.False(t, events[0].OccurredAt.IsZero())
}

func TestBuffer_FlushFailureRequeuesAndTrims(t *testing.T) {
	sink := &recordingSink{failing: true}
	b := analytics.NewBuffer(sink, analytics.Options{BatchSize: 2, FlushInterval: time.Hour, MaxBuffer: 3})
	ctx := context.Background()

	require.NoError(t, b.Track(ctx, named("a", "b")...))
	require.Error(t, b.Flush(ctx))
	require.Equal(t, 2, b.Len())

	require.NoError(t, b.Track(ctx, named("c", "d")...))
	require.Error(t, b.Flush(ctx))
	// oldest event dropped
	require.Equal(t, 3, b.Len())

	sink.failing = false
	require.NoError(t, b.Flush(ctx))
	require.Zero(t, b.Len())
	require.Len(t, sink.batches, 1)

	var got []string
	for _, e := range sink.batches[0] {
		got = append(got, e.Name)
	}
	require.Equal(t, []string{"b", "c", "d"}, got)

	require.NoError(t, b.Flush(ctx))
	require.Len(t, sink.batches, 1)
}

func TestBuffer_FlushesWhenBatchIsFull(t *testing.T) {
	sink := &recordingSink{}
	b := analytics.NewBuffer(sink, analytics.Options{BatchSize: 3, FlushInterval: time.Hour, MaxBuffer: 100})
	ctx := context.Background()
	b.Start(ctx)

	require.NoError(t, b.Track(ctx, named("a", "b")...))
	require.NoError(t, b.Track(ctx, named("c")...))

	require.Eventually(t, func() bool { return sink.written() == 3 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, b.Close(ctx))
}

func TestBuffer_FlushesOnInterval(t *testing.T) {
	sink := &recordingSink{}
	b := analytics.NewBuffer(sink, analytics.Options{BatchSize: 100, FlushInterval: 20 * time.Millisecond, MaxBuffer: 100})
	ctx := context.Background()
	b.Start(ctx)
	t.Cleanup(func() { _ = b.Close(ctx) })

	require.NoError(t, b.Track(ctx, named("a")...))
	require.Eventually(t, func() bool { return sink.written() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestBuffer_CloseFlushesRemainder(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mockanalytics.NewMockSink(ctrl)
	b := analytics.NewBuffer(sink, analytics.Options{BatchSize: 100, FlushInterval: time.Hour, MaxBuffer: 100})
	ctx := context.Background()

	require.NoError(t, b.Track(ctx, named("a", "b")...))

	sink.EXPECT().Write(gomock.Any(), gomock.Len(2)).Return(nil)
	require.NoError(t, b.Close(ctx))
	require.NoError(t, b.Close(ctx))
}

func TestBuffer_TrackAfterCloseIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mockanalytics.NewMockSink(ctrl)
	b := analytics.NewBuffer(sink, analytics.Options{BatchSize: 100, FlushInterval: time.Hour, MaxBuffer: 100})
	ctx := context.Background()
	b.Start(ctx)

	require.NoError(t, b.Close(ctx))

	err := b.Track(ctx, named("late")...)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Zero(t, b.Len())
}
