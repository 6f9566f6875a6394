// Package order provides the Order aggregate and its lifecycle state
// machine.
//
// The package includes:
//   - Order: the aggregate root holding identity, delivery metadata,
//     payment flags, and exclusively-owned line items
//   - Status: a state machine enforcing the
//     Pending -> Preparing -> Delivered happy path, with Pending-only
//     rejection and cancellation
//   - LineItem: a value object capturing a catalog item's price at order
//     time (composition, not a live catalog reference)
//   - the persisted record codec used by the delimited order files
//
// Key business rules:
//   - Order totals are always recomputed live: sum of line item subtotals
//     plus the flat delivery fee; an empty order totals zero
//   - Delivered, Rejected and Cancelled are terminal; terminal orders
//     accept no further mutation
//   - Invalid transitions report an error and leave the order unchanged
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
