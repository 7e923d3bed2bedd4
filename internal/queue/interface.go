package queue

import (
	"context"

	"directorybolt/pkg/domain"
	"directorybolt/pkg/storage"
)

// JobDetails is a queue job with its directory submissions.
type JobDetails struct {
	Job         domain.QueueJob     `json:"job"`
	Submissions []domain.Submission `json:"submissions"`
}

//go:generate mockgen -package mockqueue -source=interface.go -destination=mock/mockqueue.go *
type Service interface {
	Enqueue(ctx context.Context, customerID domain.CustomerID) (*domain.QueueJob, error)
	Next(ctx context.Context) (*domain.QueueJob, error)
	Complete(ctx context.Context,
		id domain.QueueJobID,
		status domain.QueueJobStatus,
		errMsg string) (*domain.QueueJob, error)
	Progress(ctx context.Context, progress domain.JobProgress) (*domain.Submission, error)
	Job(ctx context.Context, id domain.QueueJobID) (*JobDetails, error)
	List(ctx context.Context,
		status domain.QueueJobStatus,
		cursor string,
		limit uint) ([]domain.QueueJob, string, error)
	Stats(ctx context.Context) (domain.QueueStats, error)
	Retry(ctx context.Context, id domain.QueueJobID) (*domain.QueueJob, error)
	RequeueStale(ctx context.Context) (storage.StaleRequeueResult, error)
}
