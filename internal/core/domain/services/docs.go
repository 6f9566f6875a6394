// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the order workflow. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - Reconciler: A domain service computing financial totals from the order ledger
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
