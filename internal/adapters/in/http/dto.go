package http

import (
	"time"

	"gruberoo/internal/core/application/usecases/commands"
	"gruberoo/internal/core/application/usecases/queries"
	"gruberoo/internal/core/domain/services"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is one requested line item.
type ItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CustomerEmail  string        `json:"customerEmail"`
	RestaurantID   string        `json:"restaurantId"`
	DeliveryAt     time.Time     `json:"deliveryAt"`
	Address        string        `json:"address"`
	PaymentMethod  string        `json:"paymentMethod"`
	SpecialRequest string        `json:"specialRequest,omitempty"`
	OfferID        string        `json:"offerId,omitempty"`
	Items          []ItemRequest `json:"items"`
}

// CreateOrderResponse carries the allocated order id.
type CreateOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

// CancelOrderRequest is the body of POST /orders/{id}/cancel.
type CancelOrderRequest struct {
	CustomerEmail string `json:"customerEmail"`
}

// ModifyOrderRequest is the body of PATCH /orders/{id}. Action selects the
// mutation; only the fields that action needs are read.
type ModifyOrderRequest struct {
	CustomerEmail string    `json:"customerEmail"`
	Action        string    `json:"action"`
	ItemName      string    `json:"itemName,omitempty"`
	Quantity      int       `json:"quantity,omitempty"`
	Address       string    `json:"address,omitempty"`
	DeliveryAt    time.Time `json:"deliveryAt,omitempty"`
}

// ProcessQueueRequest maps order ids to the operator's chosen action:
// confirm, reject, deliver or skip. Orders without an entry are skipped.
type ProcessQueueRequest struct {
	Actions map[int64]string `json:"actions"`
}

// OrderOutcomeResponse reports what happened to one order during a pass.
type OrderOutcomeResponse struct {
	OrderID  int64  `json:"orderId"`
	Status   string `json:"status"`
	Requeued bool   `json:"requeued"`
	Error    string `json:"error,omitempty"`
}

// BulkProcessRequest is the body of POST /orders/bulk-process. A zero
// threshold selects the standard one-hour cutoff.
type BulkProcessRequest struct {
	ThresholdMinutes int `json:"thresholdMinutes,omitempty"`
}

// BulkProcessResponse summarizes one triage sweep.
type BulkProcessResponse struct {
	Inspected        int     `json:"inspected"`
	MovedToPreparing int     `json:"movedToPreparing"`
	Rejected         int     `json:"rejected"`
	InspectedPercent float64 `json:"inspectedPercent"`
}

// FoodItemResponse is one catalog menu item.
type FoodItemResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// MenuResponse is one restaurant menu.
type MenuResponse struct {
	ID    string             `json:"id"`
	Name  string             `json:"name"`
	Items []FoodItemResponse `json:"items"`
}

// RestaurantResponse is one catalog entry.
type RestaurantResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Menus []MenuResponse `json:"menus"`
}

// OrderItemResponse is one line item of a customer's order.
type OrderItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

// CustomerOrderResponse is one order in a customer's ledger.
type CustomerOrderResponse struct {
	OrderID      int64               `json:"orderId"`
	RestaurantID string              `json:"restaurantId"`
	Status       string              `json:"status"`
	DeliveryAt   time.Time           `json:"deliveryAt"`
	Address      string              `json:"address"`
	Total        string              `json:"total"`
	Items        []OrderItemResponse `json:"items"`
}

// RefundEntryResponse is one refund ledger entry, top of the stack first.
type RefundEntryResponse struct {
	OrderID  int64     `json:"orderId"`
	PushedAt time.Time `json:"pushedAt"`
}

// RestaurantTotalsResponse is one restaurant's reconciliation line.
type RestaurantTotalsResponse struct {
	RestaurantID   string `json:"restaurantId"`
	Revenue        string `json:"revenue"`
	Refunds        string `json:"refunds"`
	Final          string `json:"final"`
	DeliveredCount int    `json:"deliveredCount"`
	ReversedCount  int    `json:"reversedCount"`
}

// ReconciliationResponse is the company-wide revenue vs refunds report.
type ReconciliationResponse struct {
	Restaurants  []RestaurantTotalsResponse `json:"restaurants"`
	TotalRevenue string                     `json:"totalRevenue"`
	TotalRefunds string                     `json:"totalRefunds"`
	Final        string                     `json:"final"`
}

func toOutcomeResponses(outcomes []commands.OrderOutcome) []OrderOutcomeResponse {
	responses := make([]OrderOutcomeResponse, len(outcomes))
	for i, outcome := range outcomes {
		responses[i] = OrderOutcomeResponse{
			OrderID:  outcome.OrderID,
			Status:   outcome.Status.String(),
			Requeued: outcome.Requeued,
		}
		if outcome.Err != nil {
			responses[i].Error = outcome.Err.Error()
		}
	}
	return responses
}

func toCatalogResponses(catalog []queries.GetRestaurantCatalogQueryResponse) []RestaurantResponse {
	restaurants := make([]RestaurantResponse, len(catalog))
	for i, rest := range catalog {
		menus := make([]MenuResponse, len(rest.Menus))
		for j, menu := range rest.Menus {
			items := make([]FoodItemResponse, len(menu.Items))
			for k, item := range menu.Items {
				items[k] = FoodItemResponse{
					Name:        item.Name,
					Description: item.Description,
					Price:       item.Price.String(),
				}
			}
			menus[j] = MenuResponse{ID: menu.ID, Name: menu.Name, Items: items}
		}
		restaurants[i] = RestaurantResponse{
			ID:    rest.ID,
			Name:  rest.Name,
			Email: rest.Email,
			Menus: menus,
		}
	}
	return restaurants
}

func toCustomerOrderResponses(orders []queries.GetCustomerOrdersQueryResponse) []CustomerOrderResponse {
	responses := make([]CustomerOrderResponse, len(orders))
	for i, o := range orders {
		items := make([]OrderItemResponse, len(o.Items))
		for j, item := range o.Items {
			items[j] = OrderItemResponse{
				Name:     item.Name,
				Quantity: item.Quantity,
				Subtotal: item.Subtotal.String(),
			}
		}
		responses[i] = CustomerOrderResponse{
			OrderID:      o.ID,
			RestaurantID: o.RestaurantID,
			Status:       o.Status,
			DeliveryAt:   o.DeliveryAt,
			Address:      o.Address,
			Total:        o.Total.String(),
			Items:        items,
		}
	}
	return responses
}

func toReconciliationResponse(report services.Report) ReconciliationResponse {
	restaurants := make([]RestaurantTotalsResponse, len(report.Restaurants))
	for i, totals := range report.Restaurants {
		restaurants[i] = RestaurantTotalsResponse{
			RestaurantID:   totals.RestaurantID,
			Revenue:        totals.Revenue.String(),
			Refunds:        totals.Refunds.String(),
			Final:          totals.Final.String(),
			DeliveredCount: totals.DeliveredCount,
			ReversedCount:  totals.ReversedCount,
		}
	}
	return ReconciliationResponse{
		Restaurants:  restaurants,
		TotalRevenue: report.TotalRevenue.String(),
		TotalRefunds: report.TotalRefunds.String(),
		Final:        report.Final.String(),
	}
}
