package queue

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RequeueStaleArgs is the periodic River job that releases processing queue
// jobs abandoned by the automation worker.
type RequeueStaleArgs struct{}

// Kind returns the River job kind used to register and dispatch the worker.
func (RequeueStaleArgs) Kind() string { return "requeue_stale_queue_jobs" }

// InsertOpts keeps at most one pending sweep at a time.
func (RequeueStaleArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Minute,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}
