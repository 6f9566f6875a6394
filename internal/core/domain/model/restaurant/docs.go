// Package restaurant provides the Restaurant aggregate and its reference
// data: menus of food items and special offers.
//
// The package includes:
//   - Restaurant: the aggregate root owning menus, offers, and the FIFO
//     processing queue of order ids
//   - Menu and FoodItem: immutable catalog reference data
//   - SpecialOffer: promotional reference data orders may point at
//
// Key business rules:
//   - Food item names are unique within a menu; prices are non-negative
//   - The processing queue is strictly FIFO and holds an order id at most
//     once; archived orders never re-enter it
//
// The package follows Domain-Driven Design principles: private fields,
// constructor validation, and behavior-rich aggregates.
package restaurant
