package ports

import (
	"context"
	"time"

	"gruberoo/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// by customer, restaurant, and status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items and current status.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves the full order ledger ordered by id ascending.
	// Used by the reconciliation workflow, which walks every settled order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByRestaurant retrieves every order placed at the given restaurant,
	// ordered by id ascending.
	GetAllByRestaurant(ctx context.Context, restaurantID string) ([]*order.Order, error)

	// GetAllByCustomer retrieves every order placed by the given customer,
	// ordered by id ascending.
	GetAllByCustomer(ctx context.Context, customerEmail string) ([]*order.Order, error)

	// GetAllPendingOlderThan retrieves pending orders created at or before the
	// given cutoff, ordered by id ascending. Used by the bulk triage workflow.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// NextID allocates the next order identifier. Identifiers are issued
	// sequentially starting at 1001 and are never reused.
	NextID(ctx context.Context) (int64, error)
}
