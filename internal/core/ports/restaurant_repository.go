// Package ports defines repository interfaces for the order workflow domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"gruberoo/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates, including their menus, special offers, and processing queue.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	// The restaurant must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate,
	// including the current state of its processing queue.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	// Returns the complete restaurant with menus, offers, and queue.
	Get(ctx context.Context, id string) (*restaurant.Restaurant, error)

	// GetAll retrieves every restaurant ordered by id ascending.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)
}
