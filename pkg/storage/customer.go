package storage

import (
	"context"

	"directorybolt/pkg/domain"
)

// CustomerUpdates lists optional changes to a business record. Only non-nil
// fields are applied.
type CustomerUpdates struct {
	Status *domain.CustomerStatus
	UserID *domain.UserID
	Tier   *domain.Tier
}

// CustomerFilter narrows customer listings.
type CustomerFilter struct {
	// UserID restricts results to records owned by the user.
	UserID *domain.UserID
	// Status restricts results to records in the given status, when set.
	Status domain.CustomerStatus
	// Cursor returns records listed after it, when set.
	Cursor *PageCursor
	Limit  uint
}

// CustomersPage is a page of customers with the cursor of the next page.
type CustomersPage struct {
	Customers []domain.Customer
	// NextCursor is nil when there is no next page.
	NextCursor *PageCursor
}

// CustomerStorage persists business records.
type CustomerStorage interface {
	CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	CustomerByID(ctx context.Context, id domain.CustomerID) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id domain.CustomerID, updates CustomerUpdates) (*domain.Customer, error)
	ListCustomers(ctx context.Context, filter CustomerFilter) (CustomersPage, error)
}
