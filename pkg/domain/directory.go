package domain

import "time"

// Difficulty estimates how hard a directory is to submit to.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Priority ranks directories by value for a submission run.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DirectoryTier buckets directories by authority.
type DirectoryTier string

const (
	DirectoryTier1 DirectoryTier = "tier1"
	DirectoryTier2 DirectoryTier = "tier2"
	DirectoryTier3 DirectoryTier = "tier3"
)

// Directory is a third-party website to which business information is submitted.
type Directory struct {
	// ID is a slug derived from the directory domain, e.g. "yelp-com".
	ID            string `json:"id"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	SubmissionURL string `json:"submissionUrl,omitempty"`
	Category      string `json:"category"`
	// DomainAuthority is the 0-100 authority score.
	DomainAuthority int           `json:"domainAuthority"`
	Difficulty      Difficulty    `json:"difficulty"`
	Priority        Priority      `json:"priority"`
	Tier            DirectoryTier `json:"tier"`

	TrafficPotential     int    `json:"trafficPotential"`
	RequiresRegistration bool   `json:"requiresRegistration"`
	ApprovalTime         string `json:"approvalTime"`
	HasCaptcha           bool   `json:"hasCaptcha"`
	IsActive             bool   `json:"isActive"`

	// Accessible is the result of the last URL audit; nil when never audited.
	Accessible     *bool     `json:"accessible,omitempty"`
	LastVerifiedAt time.Time `json:"lastVerifiedAt,omitzero"`
	// AuthorityCheckedAt is when DomainAuthority was last fetched from the
	// metrics provider; zero for imported values.
	AuthorityCheckedAt time.Time `json:"authorityCheckedAt,omitzero"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// TargetURL is the page a submission starts from.
func (d Directory) TargetURL() string {
	if d.SubmissionURL != "" {
		return d.SubmissionURL
	}

	return d.URL
}
