package services

import (
	"sort"

	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/core/domain/model/order"
)

// RestaurantTotals holds the reconciled financial totals for one restaurant.
//
// Revenue sums the totals of delivered orders. Refunds sums the totals of
// rejected and cancelled orders, delivery fee included. Final is
// Revenue minus Refunds and may be negative when a restaurant reversed
// more value than it delivered.
type RestaurantTotals struct {
	RestaurantID   string
	Revenue        kernel.Money
	Refunds        kernel.Money
	Final          kernel.Money
	DeliveredCount int
	ReversedCount  int
}

// Report is the outcome of a full reconciliation run: per-restaurant totals
// ordered by restaurant id, plus the grand totals across all restaurants.
type Report struct {
	Restaurants  []RestaurantTotals
	TotalRevenue kernel.Money
	TotalRefunds kernel.Money
	Final        kernel.Money
}

// Reconciler is a domain service that computes financial totals from the
// order ledger.
//
// Key responsibilities:
//   - Grouping orders by restaurant
//   - Summing delivered revenue and reversed refunds
//   - Producing deterministic, restaurant-ordered reports
//
// Business rules:
//   - Only delivered orders contribute to revenue
//   - Only rejected and cancelled orders contribute to refunds
//   - Refund amounts include the delivery fee charged on the order
//   - Pending and preparing orders are ignored entirely
//
// Example usage:
//
//	reconciler := NewReconciler()
//	report, err := reconciler.Reconcile(orders)
//	if err != nil {
//	    // an order failed validation
//	    return
//	}
//	// report.Final is total revenue minus total refunds
type Reconciler struct{}

// NewReconciler creates a new Reconciler instance.
func NewReconciler() Reconciler {
	return Reconciler{}
}

// Reconcile walks the given orders and produces the financial report.
//
// Parameters:
//   - orders: The full order ledger to reconcile (each must be valid)
//
// Returns:
//   - Report: Per-restaurant and grand totals, restaurants ordered by id
//   - error: Validation error of the first invalid order encountered
//
// Orders in non-settled statuses (pending, preparing) carry no financial
// weight and are skipped. The input order does not affect the result: the
// report is grouped by restaurant id and sorted for determinism.
func (r Reconciler) Reconcile(orders []*order.Order) (Report, error) {
	byRestaurant := make(map[string]*RestaurantTotals)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return Report{}, err
		}

		totals, ok := byRestaurant[o.RestaurantID()]
		if !ok {
			totals = &RestaurantTotals{RestaurantID: o.RestaurantID()}
			byRestaurant[o.RestaurantID()] = totals
		}

		switch o.Status() {
		case order.Delivered:
			totals.Revenue = totals.Revenue.Add(o.Total())
			totals.DeliveredCount++
		case order.Rejected, order.Cancelled:
			totals.Refunds = totals.Refunds.Add(o.Total())
			totals.ReversedCount++
		}
	}

	report := Report{Restaurants: make([]RestaurantTotals, 0, len(byRestaurant))}
	for _, totals := range byRestaurant {
		totals.Final = totals.Revenue.Sub(totals.Refunds)
		report.Restaurants = append(report.Restaurants, *totals)
		report.TotalRevenue = report.TotalRevenue.Add(totals.Revenue)
		report.TotalRefunds = report.TotalRefunds.Add(totals.Refunds)
	}
	report.Final = report.TotalRevenue.Sub(report.TotalRefunds)

	sort.Slice(report.Restaurants, func(i, j int) bool {
		return report.Restaurants[i].RestaurantID < report.Restaurants[j].RestaurantID
	})

	return report, nil
}
