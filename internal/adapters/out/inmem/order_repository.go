package inmem

import (
	"context"
	"sort"
	"time"

	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/pkg/errs"
)

// OrderRepository is the in-memory ports.OrderRepository.
type OrderRepository struct {
	store *Store
}

// NewOrderRepository creates an order repository over the given store.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Add persists a new order. Fails when the id is already taken.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("order id")
	}

	r.store.orders[aggregate.ID()] = aggregate

	// Imported orders carry their own ids; keep the allocator ahead of them.
	if aggregate.ID() >= r.store.nextOrderID {
		r.store.nextOrderID = aggregate.ID() + 1
	}
	return nil
}

// Update persists changes to an existing order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.orders[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.store.orders[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves an order by id.
func (r *OrderRepository) Get(_ context.Context, id int64) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, exists := r.store.orders[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return o, nil
}

// GetAll retrieves the full ledger ordered by id ascending.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.collect(func(*order.Order) bool { return true }), nil
}

// GetAllByRestaurant retrieves a restaurant's orders ordered by id ascending.
func (r *OrderRepository) GetAllByRestaurant(_ context.Context, restaurantID string) ([]*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.collect(func(o *order.Order) bool { return o.RestaurantID() == restaurantID }), nil
}

// GetAllByCustomer retrieves a customer's orders ordered by id ascending.
func (r *OrderRepository) GetAllByCustomer(_ context.Context, customerEmail string) ([]*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.collect(func(o *order.Order) bool { return o.CustomerEmail() == customerEmail }), nil
}

// GetAllPendingOlderThan retrieves pending orders created at or before the
// cutoff, ordered by id ascending.
func (r *OrderRepository) GetAllPendingOlderThan(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.collect(func(o *order.Order) bool {
		return o.Status() == order.Pending && !o.CreatedAt().After(cutoff)
	}), nil
}

// NextID allocates the next sequential order id.
func (r *OrderRepository) NextID(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := r.store.nextOrderID
	r.store.nextOrderID++
	return id, nil
}

// collect filters the ledger under the store lock, id ascending.
func (r *OrderRepository) collect(keep func(*order.Order) bool) []*order.Order {
	orders := make([]*order.Order, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		if keep(o) {
			orders = append(orders, o)
		}
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].ID() < orders[j].ID() })
	return orders
}
