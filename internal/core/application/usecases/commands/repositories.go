// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"gruberoo/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// RefundRepoFactory provides access to the refund ledger within a transaction.
	RefundRepoFactory interface {
		RefundRepository() ports.RefundRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW manages transactions for order placement, which touches
	// the order, the restaurant queue, and the customer's order list.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		CustomerRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// TriageUoW manages transactions for queue processing and cancellation,
	// which touch orders, restaurant queues, and the refund ledger.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   refundRepo := uow.RefundRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TriageUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		RefundRepoFactory
	}

	// TriageUoWFactory creates new triage unit of work instances.
	TriageUoWFactory interface {
		Create() TriageUoW
	}
)
