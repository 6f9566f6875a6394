package queries

import (
	"errors"
	"strings"
	"time"

	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
	ErrCustomerEmailIsInvalid = errors.New("customer email must be a non-empty email address")
)

// GetCustomerOrdersQuery retrieves a customer's order ledger: every order
// the customer has placed, with line items and the recomputed total.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery("alice@example.com")
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get customer orders: %w", err)
//	}
type GetCustomerOrdersQuery struct {
	guard guard.ConstructorGuard

	customerEmail string
}

// NewGetCustomerOrdersQuery creates a query for one customer's orders.
func NewGetCustomerOrdersQuery(customerEmail string) (GetCustomerOrdersQuery, error) {
	var query GetCustomerOrdersQuery

	if err := errors.Join(
		query.setCustomerEmail(customerEmail),
	); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	query.guard = guard.NewConstructorGuard()
	return query, nil
}

func (q *GetCustomerOrdersQuery) setCustomerEmail(customerEmail string) error {
	if customerEmail == "" || !strings.Contains(customerEmail, "@") {
		return ErrCustomerEmailIsInvalid
	}
	q.customerEmail = customerEmail
	return nil
}

// CustomerEmail returns the email the ledger is requested for.
func (q GetCustomerOrdersQuery) CustomerEmail() string {
	return q.customerEmail
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// GetCustomerOrdersQueryResponse represents one order in a customer's ledger.
// Total is recomputed from the line items, never read from a stored column.
type GetCustomerOrdersQueryResponse struct {
	ID           int64
	RestaurantID string
	Status       string
	DeliveryAt   time.Time
	Address      string
	Total        kernel.Money
	Items        []OrderItemResponse
}

// OrderItemResponse represents one line item of an order.
type OrderItemResponse struct {
	Name     string
	Quantity int
	Subtotal kernel.Money
}
