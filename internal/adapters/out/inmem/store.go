// Package inmem provides map-backed implementations of the persistence
// ports. It backs the service when no database is configured and keeps
// use case tests free of database plumbing.
package inmem

import (
	"sync"

	"gruberoo/internal/core/domain/model/customer"
	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/core/domain/model/refund"
	"gruberoo/internal/core/domain/model/restaurant"
)

const firstOrderID = 1001

// Store is the shared in-memory state behind the repositories.
// A single mutex guards all maps; aggregates are stored by reference, so
// mutations become visible on Update without copying.
type Store struct {
	mu          sync.Mutex
	orders      map[int64]*order.Order
	restaurants map[string]*restaurant.Restaurant
	customers   map[string]*customer.Customer
	refunds     *refund.Stack
	nextOrderID int64
}

// NewStore creates an empty store. Order ids are issued from 1001.
func NewStore() *Store {
	return &Store{
		orders:      make(map[int64]*order.Order),
		restaurants: make(map[string]*restaurant.Restaurant),
		customers:   make(map[string]*customer.Customer),
		refunds:     refund.NewStack(),
		nextOrderID: firstOrderID,
	}
}
