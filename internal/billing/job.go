package billing

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// FulfilArgs is the River job created when a checkout completes.
type FulfilArgs struct {
	PurchaseID string `json:"purchaseId" river:"unique"`
	// Email and StripeCustomerID come from the completed checkout session.
	Email            string `json:"email,omitempty"`
	StripeCustomerID string `json:"stripeCustomerId,omitempty"`
}

func (FulfilArgs) Kind() string { return "fulfil_purchase" }

// InsertOpts makes fulfilment unique per purchase for as long as it exists.
func (FulfilArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 10,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
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
