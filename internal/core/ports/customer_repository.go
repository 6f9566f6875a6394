package ports

import (
	"context"

	"gruberoo/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer aggregates.
// Customers are identified by their email address.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by email.
	Get(ctx context.Context, email string) (*customer.Customer, error)

	// GetAll retrieves every customer ordered by email ascending.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
