package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomerID uniquely identifies a business record.
type CustomerID uuid.UUID

// String returns the canonical textual form of the ID.
func (id CustomerID) String() string { return uuid.UUID(id).String() }

// CustomerStatus tracks where a business record is in the submission workflow.
type CustomerStatus string

const (
	CustomerStatusPending    CustomerStatus = "pending"
	CustomerStatusQueued     CustomerStatus = "queued"
	CustomerStatusInProgress CustomerStatus = "in_progress"
	CustomerStatusCompleted  CustomerStatus = "completed"
	CustomerStatusFailed     CustomerStatus = "failed"
)

// Customer is the business information submitted to directories.
type Customer struct {
	ID     CustomerID `json:"id"`
	UserID *UserID    `json:"userId,omitempty"`

	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category,omitempty"`

	// Tier is the package the record was bought with.
	Tier   Tier           `json:"tier"`
	Status CustomerStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}
