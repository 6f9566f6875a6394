// Package kernel provides core domain primitives shared by every aggregate
// in the order workflow. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - Money: an immutable single-currency amount held in integer cents,
//     with parsing and formatting matching the persisted order record
//
// These primitives enforce domain invariants and validation rules, are
// immutable, and carry no dependency on any aggregate, so they may be used
// by every layer of the application.
package kernel
