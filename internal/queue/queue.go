// Package queue implements the AutoBolt submission queue: customers are
// enqueued against their tier limits, the automation worker claims jobs in
// priority order and reports progress and completion.
package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"directorybolt/internal/config"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/metrics"
	"directorybolt/pkg/serrors"
	"directorybolt/pkg/storage"

	"go.uber.org/zap"
)

const maxDirectoryNameLength = 255

// Options configure stale job handling.
type Options struct {
	// StaleAfter is how long a job may stay in processing before it is
	// considered abandoned.
	StaleAfter time.Duration
	// MaxAttempts is how many claims a job gets before a stale sweep fails it.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		StaleAfter:  cfg.Queue.StaleAfter,
		MaxAttempts: cfg.Queue.MaxAttempts,
	}
}

type service struct {
	options Options
	storage storage.Storage
}

// Enqueue puts a customer record in the queue. The directory budget of the
// job is the customer's tier limit, capped by what the owning user has left.
// Usage, the job and the customer status change in one transaction.
func (s service) Enqueue(ctx context.Context, customerID domain.CustomerID) (*domain.QueueJob, error) {
	var job *domain.QueueJob
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		customer, err := tx.CustomerByID(ctx, customerID)
		if err != nil {
			return fmt.Errorf("could not get customer: %w", err)
		}
		if customer == nil {
			return serrors.With(serrors.ErrNotFound, "customer not found")
		}

		active, err := tx.ActiveQueueJobByCustomer(ctx, customerID)
		if err != nil {
			return fmt.Errorf("could not get active job: %w", err)
		}
		if active != nil {
			return serrors.With(serrors.ErrConflict, "customer already has an active job")
		}

		limits := customer.Tier.Limits()
		if limits.Directories <= 0 {
			return serrors.With(serrors.ErrPaymentRequired, "tier %s does not include directory submissions", customer.Tier)
		}

		budget := limits.Directories
		if customer.UserID != nil {
			budget, err = consumeUserBudget(ctx, tx, *customer.UserID, budget)
			if err != nil {
				return err
			}
		}

		job, err = tx.CreateQueueJob(ctx, domain.QueueJob{
			CustomerID:     customer.ID,
			BusinessName:   customer.BusinessName,
			Tier:           customer.Tier,
			DirectoryLimit: budget,
			PriorityLevel:  limits.PriorityLevel,
			Status:         domain.QueueJobStatusQueued,
		})
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.Wrap(serrors.ErrConflict, err, "customer already has an active job")
		}
		if err != nil {
			return fmt.Errorf("could not create queue job: %w", err)
		}

		queued := domain.CustomerStatusQueued
		if _, err := tx.UpdateCustomer(ctx, customer.ID, storage.CustomerUpdates{Status: &queued}); err != nil {
			return fmt.Errorf("could not update customer status: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue customer: %w", err)
	}

	metrics.ObserveQueueTransition(string(domain.QueueJobStatusQueued))
	logger.Info(ctx, "customer enqueued",
		zap.Stringer("customer_id", customerID),
		zap.Stringer("job_id", job.ID),
		zap.Int("directory_limit", job.DirectoryLimit))

	return job, nil
}

// consumeUserBudget takes up to want directories from the user's remaining
// tier allowance and returns how many were taken.
func consumeUserBudget(ctx context.Context, tx storage.AllStorage, userID domain.UserID, want int) (int, error) {
	user, err := tx.UserByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return 0, serrors.With(serrors.ErrNotFound, "user not found")
	}

	remaining := user.DirectoriesRemaining()
	if remaining <= 0 {
		return 0, serrors.With(serrors.ErrLimitExceeded, "directory limit of tier %s reached", user.Tier)
	}
	n := min(want, remaining)

	updated, err := tx.ConsumeDirectories(ctx, userID, n, user.Tier.Limits().Directories)
	if err != nil {
		return 0, fmt.Errorf("could not consume directories: %w", err)
	}
	if updated == nil {
		return 0, serrors.With(serrors.ErrLimitExceeded, "directory limit of tier %s reached", user.Tier)
	}

	return n, nil
}

func (s service) Next(ctx context.Context) (*domain.QueueJob, error) {
	job, err := s.storage.ClaimNextQueueJob(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not claim next job: %w", err)
	}
	metrics.ObserveQueueClaim(job != nil)
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "queue is empty")
	}
	metrics.ObserveQueueTransition(string(domain.QueueJobStatusProcessing))

	return job, nil
}

func (s service) Complete(ctx context.Context,
	id domain.QueueJobID,
	status domain.QueueJobStatus,
	errMsg string) (*domain.QueueJob, error) {
	if !status.Terminal() {
		return nil, serrors.With(serrors.ErrBadRequest, "status must be completed or failed")
	}

	job, err := s.storage.CompleteQueueJob(ctx, id, status, strings.TrimSpace(errMsg))
	if errors.Is(err, storage.ErrInvalidArgument) {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid completion status")
	}
	if err != nil {
		return nil, fmt.Errorf("could not complete job: %w", err)
	}
	if job == nil {
		return nil, s.notProcessing(ctx, id)
	}

	metrics.ObserveQueueTransition(string(status))
	logger.Info(ctx, "queue job finished",
		zap.Stringer("job_id", id),
		zap.String("status", string(status)),
		zap.Int("completed", job.DirectoriesCompleted),
		zap.Int("failed", job.DirectoriesFailed))

	return job, nil
}

func (s service) Progress(ctx context.Context, progress domain.JobProgress) (*domain.Submission, error) {
	progress.DirectoryName = strings.TrimSpace(progress.DirectoryName)
	if progress.DirectoryName == "" || len(progress.DirectoryName) > maxDirectoryNameLength {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid directory name")
	}
	if !progress.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid submission status %q", progress.Status)
	}

	sub, err := s.storage.UpdateJobProgress(ctx, progress)
	if err != nil {
		return nil, fmt.Errorf("could not update job progress: %w", err)
	}
	if sub == nil {
		return nil, s.notProcessing(ctx, progress.JobID)
	}

	return sub, nil
}

// notProcessing tells a missing job apart from one in the wrong state.
func (s service) notProcessing(ctx context.Context, id domain.QueueJobID) error {
	job, err := s.storage.QueueJobByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return serrors.With(serrors.ErrNotFound, "job not found")
	}

	return serrors.With(serrors.ErrConflict, "job is %s, not processing", job.Status)
}

func (s service) Job(ctx context.Context, id domain.QueueJobID) (*JobDetails, error) {
	job, err := s.storage.QueueJobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	subs, err := s.storage.JobSubmissions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job submissions: %w", err)
	}

	return &JobDetails{Job: *job, Submissions: subs}, nil
}

// List returns a page of jobs, newest first. The cursor is the opaque token
// returned with the previous page.
func (s service) List(ctx context.Context,
	status domain.QueueJobStatus,
	cursor string,
	limit uint) ([]domain.QueueJob, string, error) {
	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	filter := storage.QueueFilter{Status: status, Limit: limit}
	if cursor != "" {
		c, err := storage.ParsePageCursor(cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		filter.Cursor = c
	}

	page, err := s.storage.ListQueueJobs(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("could not list jobs: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.String()
	}

	return page.Jobs, next, nil
}

func (s service) Stats(ctx context.Context) (domain.QueueStats, error) {
	stats, err := s.storage.QueueStats(ctx)
	if err != nil {
		return domain.QueueStats{}, fmt.Errorf("could not get queue stats: %w", err)
	}

	return stats, nil
}

// Retry moves a failed job back to the queue and the customer with it.
func (s service) Retry(ctx context.Context, id domain.QueueJobID) (*domain.QueueJob, error) {
	var job *domain.QueueJob
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		job, err = tx.RetryQueueJob(ctx, id)
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.Wrap(serrors.ErrConflict, err, "customer already has an active job")
		}
		if err != nil {
			return fmt.Errorf("could not retry job: %w", err)
		}
		if job == nil {
			existing, err := tx.QueueJobByID(ctx, id)
			if err != nil {
				return fmt.Errorf("could not get job: %w", err)
			}
			if existing == nil {
				return serrors.With(serrors.ErrNotFound, "job not found")
			}

			return serrors.With(serrors.ErrConflict, "only failed jobs can be retried")
		}

		queued := domain.CustomerStatusQueued
		if _, err := tx.UpdateCustomer(ctx, job.CustomerID, storage.CustomerUpdates{Status: &queued}); err != nil {
			return fmt.Errorf("could not update customer status: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not retry job: %w", err)
	}

	metrics.ObserveQueueTransition(string(domain.QueueJobStatusQueued))

	return job, nil
}

func (s service) RequeueStale(ctx context.Context) (storage.StaleRequeueResult, error) {
	res, err := s.storage.RequeueStaleQueueJobs(ctx, time.Now().Add(-s.options.StaleAfter), s.options.MaxAttempts)
	if err != nil {
		return res, fmt.Errorf("could not requeue stale jobs: %w", err)
	}
	if res.Requeued+res.Failed > 0 {
		logger.Warn(ctx, "released stale queue jobs",
			zap.Int64("requeued", res.Requeued),
			zap.Int64("failed", res.Failed))
	}

	return res, nil
}

// New creates a queue Service backed by the provided storage.
func New(storage storage.Storage, options Options) Service {
	return &service{
		options: options,
		storage: storage,
	}
}
