package inmem

import (
	"context"
	"sort"

	"gruberoo/internal/core/domain/model/restaurant"
	"gruberoo/internal/pkg/errs"
)

// RestaurantRepository is the in-memory ports.RestaurantRepository.
type RestaurantRepository struct {
	store *Store
}

// NewRestaurantRepository creates a restaurant repository over the given store.
func NewRestaurantRepository(store *Store) *RestaurantRepository {
	return &RestaurantRepository{store: store}
}

// Add persists a new restaurant. Fails when the id is already taken.
func (r *RestaurantRepository) Add(_ context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.restaurants[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("restaurant id")
	}

	r.store.restaurants[aggregate.ID()] = aggregate
	return nil
}

// Update persists changes to an existing restaurant.
func (r *RestaurantRepository) Update(_ context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.restaurants[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID())
	}

	r.store.restaurants[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves a restaurant by id.
func (r *RestaurantRepository) Get(_ context.Context, id string) (*restaurant.Restaurant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rest, exists := r.store.restaurants[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("restaurant", id)
	}

	return rest, nil
}

// GetAll retrieves every restaurant ordered by id ascending.
func (r *RestaurantRepository) GetAll(_ context.Context) ([]*restaurant.Restaurant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	restaurants := make([]*restaurant.Restaurant, 0, len(r.store.restaurants))
	for _, rest := range r.store.restaurants {
		restaurants = append(restaurants, rest)
	}

	sort.Slice(restaurants, func(i, j int) bool { return restaurants[i].ID() < restaurants[j].ID() })
	return restaurants, nil
}
