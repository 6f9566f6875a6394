package customer

import (
	"errors"
	"strings"

	"gruberoo/internal/pkg/errs"
	"gruberoo/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using a Customer that was not
// created via NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer or RestoreCustomer constructor",
)

// Customer is an aggregate identified by email address. It holds an ordered
// list of order-id references; the orders themselves live in the order
// ledger and are never owned or deleted by the customer.
type Customer struct {
	email    string
	name     string
	orderIDs []int64

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with no orders. The email must contain an
// "@" and the name must be non-empty.
func NewCustomer(name, email string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence with its order
// references in stored order.
func RestoreCustomer(name, email string, orderIDs []int64) (*Customer, error) {
	c, err := NewCustomer(name, email)
	if err != nil {
		return nil, err
	}

	for _, id := range orderIDs {
		if err = c.AddOrder(id); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Email returns the customer's identity.
func (c *Customer) Email() string {
	return c.email
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// OrderIDs returns the customer's order references in insertion order.
func (c *Customer) OrderIDs() []int64 {
	ids := make([]int64, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

// HasOrder reports whether the customer references the given order id.
func (c *Customer) HasOrder(orderID int64) bool {
	for _, id := range c.orderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}

// AddOrder records a reference to an order. Duplicate references are
// rejected.
func (c *Customer) AddOrder(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	if c.HasOrder(orderID) {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			errors.New("order is already referenced by this customer"))
	}

	c.orderIDs = append(c.orderIDs, orderID)
	return nil
}

// RemoveOrder drops the reference to the given order id. The underlying
// order is untouched. Reports whether a reference was removed.
func (c *Customer) RemoveOrder(orderID int64) bool {
	for i, id := range c.orderIDs {
		if id == orderID {
			c.orderIDs = append(c.orderIDs[:i], c.orderIDs[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("customer email")
	}
	c.email = email
	return nil
}
