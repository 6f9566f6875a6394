package commands

import (
	"errors"
	"strings"
	"time"

	"gruberoo/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerEmailIsInvalid  = errors.New("customer email is required and must contain @")
	ErrRestaurantIDIsRequired  = errors.New("restaurant id is required")
	ErrDeliveryTimeIsRequired  = errors.New("delivery time is required")
	ErrAddressIsRequired       = errors.New("delivery address is required")
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
	ErrItemsAreRequired        = errors.New("at least one item is required")
	ErrItemNameIsRequired      = errors.New("item name is required")
	ErrItemQuantityIsInvalid   = errors.New("item quantity must be greater than 0")
)

// ItemInput is one requested line item: the menu item name and how many.
type ItemInput struct {
	Name     string
	Quantity int
}

// CreateOrderCommand represents a request to place a new order at a restaurant.
// Encapsulates the customer, the restaurant, delivery details, and requested items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("alice@example.com", "r-1",
//	    deliveryAt, "1 Main Street", "CC", "", nil,
//	    []ItemInput{{Name: "Carbonara", Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerEmail  string
	restaurantID   string
	deliveryAt     time.Time
	address        string
	paymentMethod  string
	specialRequest string
	offerID        *uuid.UUID
	items          []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer email, restaurant id, delivery time, address,
// payment method, and items are present and well formed. The special request
// is optional; the offer id may be nil.
func NewCreateOrderCommand(
	customerEmail string,
	restaurantID string,
	deliveryAt time.Time,
	address string,
	paymentMethod string,
	specialRequest string,
	offerID *uuid.UUID,
	items []ItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		specialRequest: specialRequest,
		offerID:        offerID,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerEmail(customerEmail),
		cmd.setRestaurantID(restaurantID),
		cmd.setDeliveryAt(deliveryAt),
		cmd.setAddress(address),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerEmail returns the ordering customer's email.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// RestaurantID returns the target restaurant id.
func (c CreateOrderCommand) RestaurantID() string {
	return c.restaurantID
}

// DeliveryAt returns the requested delivery time.
func (c CreateOrderCommand) DeliveryAt() time.Time {
	return c.deliveryAt
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// PaymentMethod returns the payment method code.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// SpecialRequest returns the optional special request text.
func (c CreateOrderCommand) SpecialRequest() string {
	return c.specialRequest
}

// OfferID returns the optional special offer id, nil when none was requested.
func (c CreateOrderCommand) OfferID() *uuid.UUID {
	return c.offerID
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []ItemInput {
	items := make([]ItemInput, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setCustomerEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrCustomerEmailIsInvalid
	}

	c.customerEmail = email
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id string) error {
	if id == "" {
		return ErrRestaurantIDIsRequired
	}

	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryAt(t time.Time) error {
	if t.IsZero() {
		return ErrDeliveryTimeIsRequired
	}

	c.deliveryAt = t
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method string) error {
	if method == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = method
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if item.Name == "" {
			return ErrItemNameIsRequired
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
	}

	c.items = make([]ItemInput, len(items))
	copy(c.items, items)
	return nil
}
