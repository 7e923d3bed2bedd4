package formmap

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// MonitorArgs captures the submission form of one directory and compares it
// with the previous capture.
type MonitorArgs struct {
	DirectoryID string `json:"directoryId" river:"unique"`
}

func (MonitorArgs) Kind() string { return "monitor_directory_form" }

func (MonitorArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// ScheduleMonitorArgs fans out one MonitorArgs job per active directory.
type ScheduleMonitorArgs struct{}

func (ScheduleMonitorArgs) Kind() string { return "schedule_directory_form_monitoring" }

func (ScheduleMonitorArgs) InsertOpts() river.InsertOpts {
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
