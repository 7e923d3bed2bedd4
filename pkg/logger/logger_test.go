package logger_test

import (
	"context"
	"testing"

	"directorybolt/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestSetLevel(t *testing.T) {
	logger.Setup(logger.ProductionEnvironment)
	t.Cleanup(func() { logger.Setup(logger.DevelopmentEnvironment) })

	ctx := context.Background()
	require.False(t, logger.IsDebug(ctx))

	require.NoError(t, logger.SetLevel("debug"))
	require.True(t, logger.IsDebug(ctx))

	require.Error(t, logger.SetLevel("chatty"))
	require.True(t, logger.IsDebug(ctx))
}

func TestGet_FallsBackToDefault(t *testing.T) {
	ctx, _ := observed(zap.InfoLevel)

	require.NotSame(t, logger.Get(context.Background()), logger.Get(ctx))
}

func TestWithFields_AreCarriedByContext(t *testing.T) {
	ctx, logs := observed(zap.DebugLevel)

	jobCtx := logger.WithFields(ctx, zap.Int64("jobID", 7), zap.String("customerId", "DB-1"))
	logger.Info(jobCtx, "claimed queue job", zap.String("directory", "Yelp"))
	logger.Info(ctx, "outside the job")

	entries := logs.TakeAll()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	require.Equal(t, int64(7), fields["jobID"])
	require.Equal(t, "DB-1", fields["customerId"])
	require.Equal(t, "Yelp", fields["directory"])

	require.NotContains(t, entries[1].ContextMap(), "jobID")
}

func TestLevels(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)

	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, zap.WarnLevel, entries[1].Level)
	require.Equal(t, zap.ErrorLevel, entries[2].Level)
	require.False(t, logger.IsDebug(ctx))
}

func TestNamed(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)

	logger.Info(logger.Named(logger.Named(ctx, "worker"), "fulfil"), "done")

	require.Equal(t, "worker.fulfil", logs.All()[0].LoggerName)
}

func TestSlog_WritesThroughContextLogger(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)
	ctx = logger.WithFields(ctx, zap.String("component", "river"))

	logger.Slog(ctx).Info("job completed", "queue", "default")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "job completed", entries[0].Message)
	require.Equal(t, "river", entries[0].ContextMap()["component"])
	require.Equal(t, "default", entries[0].ContextMap()["queue"])
}
