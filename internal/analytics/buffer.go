package analytics

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"directorybolt/internal/config"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/metrics"
	"directorybolt/pkg/serrors"

	"go.uber.org/zap"
)

const (
	maxNameLength    = 64
	maxEventsPerCall = 500
)

// Options configure the Buffer.
type Options struct {
	// BatchSize signals a flush once this many events are buffered.
	BatchSize int
	// FlushInterval is the longest time an event stays buffered.
	FlushInterval time.Duration
	// MaxBuffer caps the buffer while the sink is failing.
	MaxBuffer int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BatchSize:     cfg.Analytics.BatchSize,
		FlushInterval: cfg.Analytics.FlushInterval,
		MaxBuffer:     cfg.Analytics.MaxBuffer,
	}
}

// Buffer is a Tracker that batches events in memory and hands them to a Sink
// from a background loop.
type Buffer struct {
	options Options
	sink    Sink
	now     func() time.Time

	mu     sync.Mutex
	events []domain.AnalyticsEvent

	flushCh  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  atomic.Bool
	stopOnce sync.Once
}

var _ Tracker = (*Buffer)(nil)

// NewBuffer creates a Buffer. Call Start to run the flush loop.
func NewBuffer(sink Sink, options Options) *Buffer {
	if options.BatchSize <= 0 {
		options.BatchSize = 100
	}
	if options.FlushInterval <= 0 {
		options.FlushInterval = 10 * time.Second
	}
	if options.MaxBuffer < options.BatchSize {
		options.MaxBuffer = options.BatchSize
	}

	return &Buffer{
		options: options,
		sink:    sink,
		now:     time.Now,
		flushCh: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (b *Buffer) Track(ctx context.Context, events ...domain.AnalyticsEvent) error {
	if len(events) == 0 {
		return nil
	}
	if len(events) > maxEventsPerCall {
		return serrors.With(serrors.ErrBadRequest, "at most %d events per call", maxEventsPerCall)
	}

	now := b.now()
	for i := range events {
		events[i].Name = strings.TrimSpace(events[i].Name)
		switch name := events[i].Name; {
		case name == "":
			return serrors.With(serrors.ErrBadRequest, "event %d: name is required", i)
		case len(name) > maxNameLength:
			return serrors.With(serrors.ErrBadRequest, "event %d: name is longer than %d characters", i, maxNameLength)
		}
		if events[i].OccurredAt.IsZero() {
			events[i].OccurredAt = now
		}
	}

	b.mu.Lock()
	select {
	case <-b.stopCh:
		b.mu.Unlock()

		return serrors.With(serrors.ErrUnavailable, "analytics buffer is closed")
	default:
	}
	b.events = append(b.events, events...)
	full := len(b.events) >= b.options.BatchSize
	b.mu.Unlock()

	metrics.AddAnalyticsEvents("accepted", len(events))
	if full {
		select {
		case b.flushCh <- struct{}{}:
		default:
		}
	}

	return nil
}

// Len returns the number of buffered events.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.events)
}

// Flush writes everything buffered. On failure the batch is put back in
// front of newer events and the buffer is trimmed to MaxBuffer, dropping the
// oldest events.
func (b *Buffer) Flush(ctx context.Context) error {
	b.mu.Lock()
	batch := b.events
	b.events = nil
	b.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	err := b.sink.Write(ctx, batch)
	if err == nil {
		metrics.AddAnalyticsEvents("written", len(batch))
		logger.Debug(ctx, "analytics events written", zap.Int("count", len(batch)))

		return nil
	}

	b.mu.Lock()
	b.events = append(batch, b.events...)
	dropped := len(b.events) - b.options.MaxBuffer
	if dropped > 0 {
		b.events = append([]domain.AnalyticsEvent(nil), b.events[dropped:]...)
	}
	b.mu.Unlock()

	metrics.AddAnalyticsEvents("failed", len(batch))
	fields := []zap.Field{zap.Error(err), zap.Int("count", len(batch))}
	if dropped > 0 {
		metrics.AddAnalyticsEvents("dropped", dropped)
		fields = append(fields, zap.Int("dropped", dropped))
	}
	logger.Warn(ctx, "could not write analytics events", fields...)

	return err
}

// Start runs the flush loop until Close is called.
func (b *Buffer) Start(ctx context.Context) {
	if !b.started.CompareAndSwap(false, true) {
		return
	}
	ctx = logger.Named(ctx, "analytics")

	go func() {
		defer close(b.doneCh)

		ticker := time.NewTicker(b.options.FlushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-b.stopCh:
				return
			case <-ticker.C:
			case <-b.flushCh:
			}
			_ = b.Flush(ctx)
		}
	}()
}

// Close stops the flush loop, if started, and flushes the remainder.
func (b *Buffer) Close(ctx context.Context) error {
	b.stopOnce.Do(func() {
		close(b.stopCh)
		if b.started.Load() {
			<-b.doneCh
		}
	})

	return b.Flush(ctx)
}
