package enrich

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for an enrichment job submitted to River.
type JobArgs struct {
	// DirectoryID is unique so that a directory is enriched at most once per
	// uniqueJobPeriod.
	DirectoryID string `json:"directoryId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod is the lookback window for duplicate jobs.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the worker.
func (args JobArgs) Kind() string { return "enrich_directory" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// ScheduleArgs is the periodic River job that enqueues stale directories.
type ScheduleArgs struct{}

func (ScheduleArgs) Kind() string { return "schedule_directory_enrichment" }

func (ScheduleArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}
