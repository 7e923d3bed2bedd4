package domain

import (
	"time"

	"github.com/google/uuid"
)

// QueueJobID uniquely identifies a queue entry.
type QueueJobID uuid.UUID

// String returns the canonical textual form of the ID.
func (id QueueJobID) String() string { return uuid.UUID(id).String() }

// QueueJobStatus is the lifecycle state of a queue entry:
// queued -> processing -> completed|failed.
type QueueJobStatus string

const (
	QueueJobStatusQueued     QueueJobStatus = "queued"
	QueueJobStatusProcessing QueueJobStatus = "processing"
	QueueJobStatusCompleted  QueueJobStatus = "completed"
	QueueJobStatusFailed     QueueJobStatus = "failed"
)

// Valid reports whether s is a known status.
func (s QueueJobStatus) Valid() bool {
	switch s {
	case QueueJobStatusQueued, QueueJobStatusProcessing, QueueJobStatusCompleted, QueueJobStatusFailed:
		return true
	}

	return false
}

// Terminal reports whether no further transition is expected.
func (s QueueJobStatus) Terminal() bool {
	return s == QueueJobStatusCompleted || s == QueueJobStatusFailed
}

// QueueJob is one submission run for a customer, claimed and worked by AutoBolt.
type QueueJob struct {
	ID           QueueJobID `json:"id"`
	CustomerID   CustomerID `json:"customerId"`
	BusinessName string     `json:"businessName"`
	Tier         Tier       `json:"tier"`
	// DirectoryLimit is how many directories this run may submit to.
	DirectoryLimit int `json:"directoryLimit"`
	// PriorityLevel orders claims; lower values are claimed first.
	PriorityLevel int            `json:"priorityLevel"`
	Status        QueueJobStatus `json:"status"`

	DirectoriesCompleted int    `json:"directoriesCompleted"`
	DirectoriesFailed    int    `json:"directoriesFailed"`
	ErrorMessage         string `json:"errorMessage,omitempty"`
	// Attempts counts how many times the job was claimed.
	Attempts int `json:"attempts"`

	StartedAt   time.Time `json:"startedAt,omitzero"`
	CompletedAt time.Time `json:"completedAt,omitzero"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// SubmissionStatus is the state of a single directory submission.
type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusApproved  SubmissionStatus = "approved"
	SubmissionStatusRejected  SubmissionStatus = "rejected"
	SubmissionStatusFailed    SubmissionStatus = "failed"
)

// Valid reports whether s is a known status.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusSubmitted, SubmissionStatusApproved,
		SubmissionStatusRejected, SubmissionStatusFailed:
		return true
	}

	return false
}

// Submission records the outcome of submitting a customer to one directory.
type Submission struct {
	ID            uuid.UUID        `json:"id"`
	JobID         QueueJobID       `json:"jobId"`
	CustomerID    CustomerID       `json:"customerId"`
	DirectoryName string           `json:"directoryName"`
	Status        SubmissionStatus `json:"status"`
	ListingURL    string           `json:"listingUrl,omitempty"`
	ErrorMessage  string           `json:"errorMessage,omitempty"`

	SubmittedAt time.Time `json:"submittedAt,omitzero"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// JobProgress is a progress report sent by AutoBolt for one directory.
type JobProgress struct {
	JobID         QueueJobID       `json:"jobId"`
	DirectoryName string           `json:"directoryName"`
	Status        SubmissionStatus `json:"status"`
	URL           string           `json:"url,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// QueueStats summarises the queue for dashboards.
type QueueStats struct {
	Jobs        map[QueueJobStatus]int64   `json:"jobs"`
	Submissions map[SubmissionStatus]int64 `json:"submissions"`
	// OldestQueuedAt is the creation time of the oldest queued job, if any.
	OldestQueuedAt time.Time `json:"oldestQueuedAt,omitzero"`
}
