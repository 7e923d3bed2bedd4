package worker

import (
	"context"
	"fmt"

	"directorybolt/internal/formmap"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"
	"directorybolt/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// FormMonitor is the part of formmap.Monitor used by the monitor worker.
//
//go:generate mockgen -package mockworker -source=monitor.go -destination=mock/mockworker.go *
type FormMonitor interface {
	Process(ctx context.Context, mode formmap.Mode, target formmap.Target) (*formmap.Outcome, error)
}

// MonitorWorker captures the submission form of a directory and records
// changes since the previous capture.
type MonitorWorker struct {
	river.WorkerDefaults[formmap.MonitorArgs]

	storage storage.Storage
	monitor FormMonitor
}

func NewMonitorWorker(storage storage.Storage, monitor FormMonitor) *MonitorWorker {
	return &MonitorWorker{storage: storage, monitor: monitor}
}

func (w *MonitorWorker) Work(ctx context.Context, job *river.Job[formmap.MonitorArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("directoryId", job.Args.DirectoryID))

	dir, err := w.storage.DirectoryByID(ctx, job.Args.DirectoryID)
	if err != nil {
		return fmt.Errorf("could not get directory: %w", err)
	}
	if dir == nil {
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "directory %s not found", job.Args.DirectoryID)) //nolint: wrapcheck
	}

	target := formmap.TargetFor(*dir)
	if target.URL() == "" {
		return river.JobCancel(serrors.With(serrors.ErrBadRequest, "directory %s has no url", dir.ID)) //nolint: wrapcheck
	}

	outcome, err := w.monitor.Process(ctx, formmap.ModeMonitor, target)
	if err != nil {
		return fmt.Errorf("could not monitor directory form: %w", err)
	}
	if outcome.Change != nil {
		logger.Info(ctx, "directory form changed", zap.Strings("changes", changeNames(outcome)))
	}

	return nil
}

func changeNames(outcome *formmap.Outcome) []string {
	names := make([]string, 0, len(outcome.Change.ChangeTypes))
	for _, c := range outcome.Change.ChangeTypes {
		names = append(names, string(c))
	}

	return names
}

// ScheduleMonitorWorker enqueues a MonitorArgs job for every active directory.
type ScheduleMonitorWorker struct {
	river.WorkerDefaults[formmap.ScheduleMonitorArgs]

	storage storage.Storage
}

func NewScheduleMonitorWorker(storage storage.Storage) *ScheduleMonitorWorker {
	return &ScheduleMonitorWorker{storage: storage}
}

func (w *ScheduleMonitorWorker) Work(ctx context.Context, _ *river.Job[formmap.ScheduleMonitorArgs]) error {
	dirs, err := w.storage.ListDirectories(ctx, true)
	if err != nil {
		return fmt.Errorf("could not list directories: %w", err)
	}

	added := 0
	for _, d := range dirs {
		if formmap.TargetFor(d).URL() == "" {
			continue
		}
		ok, err := w.storage.AddJob(ctx, formmap.MonitorArgs{DirectoryID: d.ID}, nil)
		if err != nil {
			return fmt.Errorf("could not add monitor job: %w", err)
		}
		if ok {
			added++
		}
	}
	logger.Info(ctx, "scheduled form monitoring", zap.Int("directories", len(dirs)), zap.Int("added", added))

	return nil
}
