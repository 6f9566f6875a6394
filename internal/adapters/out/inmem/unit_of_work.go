package inmem

import (
	"context"

	"gruberoo/internal/core/ports"
)

// UnitOfWork is the in-memory ports.UnitOfWork. The store has no real
// transactions, so Begin, Commit, and Rollback are bookkeeping only:
// mutations apply to the store as repositories are used, matching the
// mutable-aggregate semantics the use case handlers rely on.
type UnitOfWork struct {
	store *Store
}

// NewUnitOfWork creates a unit of work over the given store.
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin starts the logical transaction.
func (u *UnitOfWork) Begin(_ context.Context) error { return nil }

// Commit completes the logical transaction.
func (u *UnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback abandons the logical transaction. Changes already applied
// through repositories are not undone.
func (u *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository returns the order repository bound to this store.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return NewOrderRepository(u.store)
}

// RestaurantRepository returns the restaurant repository bound to this store.
func (u *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return NewRestaurantRepository(u.store)
}

// CustomerRepository returns the customer repository bound to this store.
func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return NewCustomerRepository(u.store)
}

// RefundRepository returns the refund repository bound to this store.
func (u *UnitOfWork) RefundRepository() ports.RefundRepository {
	return NewRefundRepository(u.store)
}

// UnitOfWorkFactory creates in-memory units of work sharing one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory over the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a unit of work over the factory's store.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.store)
}
