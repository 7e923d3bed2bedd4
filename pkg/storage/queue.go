package storage

import (
	"context"
	"time"

	"directorybolt/pkg/domain"
)

// QueueFilter narrows queue listings.
type QueueFilter struct {
	// Status restricts results to jobs in the given status, when set.
	Status domain.QueueJobStatus
	// Cursor returns jobs listed after it, when set.
	Cursor *PageCursor
	Limit  uint
}

// QueueJobsPage is a page of queue jobs with the cursor of the next page.
type QueueJobsPage struct {
	Jobs []domain.QueueJob
	// NextCursor is nil when there is no next page.
	NextCursor *PageCursor
}

// StaleRequeueResult reports what happened to stale processing jobs.
type StaleRequeueResult struct {
	// Requeued jobs went back to queued.
	Requeued int64
	// Failed jobs ran out of attempts.
	Failed int64
}

// QueueStorage persists the AutoBolt submission queue. Claim, completion and
// progress go through the get_next_job_in_queue, complete_autobolt_job and
// update_job_progress database functions.
type QueueStorage interface {
	CreateQueueJob(ctx context.Context, job domain.QueueJob) (*domain.QueueJob, error)
	QueueJobByID(ctx context.Context, id domain.QueueJobID) (*domain.QueueJob, error)
	// ActiveQueueJobByCustomer returns the queued or processing job of the customer.
	ActiveQueueJobByCustomer(ctx context.Context, customerID domain.CustomerID) (*domain.QueueJob, error)
	// ClaimNextQueueJob moves the most urgent queued job to processing and
	// returns it, or nil when the queue is empty.
	ClaimNextQueueJob(ctx context.Context) (*domain.QueueJob, error)
	// CompleteQueueJob finishes a processing job. It returns nil when the job
	// does not exist or is not processing.
	CompleteQueueJob(ctx context.Context, id domain.QueueJobID, status domain.QueueJobStatus, errMsg string) (*domain.QueueJob, error) //nolint: lll
	// UpdateJobProgress upserts the submission for one directory of a processing
	// job. It returns nil when the job does not exist or is not processing.
	UpdateJobProgress(ctx context.Context, progress domain.JobProgress) (*domain.Submission, error)
	JobSubmissions(ctx context.Context, id domain.QueueJobID) ([]domain.Submission, error)
	ListQueueJobs(ctx context.Context, filter QueueFilter) (QueueJobsPage, error)
	QueueStats(ctx context.Context) (domain.QueueStats, error)
	// RetryQueueJob moves a failed job back to queued. It returns nil when the
	// job does not exist or is not failed.
	RetryQueueJob(ctx context.Context, id domain.QueueJobID) (*domain.QueueJob, error)
	// RequeueStaleQueueJobs returns processing jobs started before startedBefore
	// to the queue, or fails them once they reached maxAttempts.
	RequeueStaleQueueJobs(ctx context.Context, startedBefore time.Time, maxAttempts int) (StaleRequeueResult, error)
}
