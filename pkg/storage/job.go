package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When called on a TxStorage the job
// becomes visible only once the surrounding transaction commits, which is how
// state changes and their follow-up work stay consistent.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It returns false when
	// a unique job with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
