package commands

import (
	"errors"
	"strings"

	"gruberoo/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// CancelOrderCommand represents a customer's request to cancel their own
// pending order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	customerEmail string
	orderID       int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Validates that the customer email and order id are well formed.
func NewCancelOrderCommand(customerEmail string, orderID int64) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerEmail(customerEmail),
		cmd.setOrderID(orderID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// CustomerEmail returns the requesting customer's email.
func (c CancelOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// OrderID returns the id of the order to cancel.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *CancelOrderCommand) setCustomerEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrCustomerEmailIsInvalid
	}

	c.customerEmail = email
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
