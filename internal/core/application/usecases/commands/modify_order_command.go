package commands

import (
	"errors"
	"strings"
	"time"

	"gruberoo/internal/pkg/guard"
)

var (
	ErrModifyOrderCommandIsNotConstructed = errors.New(
		"ModifyOrderCommand must be created via NewModifyOrderCommand constructor",
	)
	ErrModifyActionIsInvalid = errors.New("modify action is invalid")
)

// ModifyAction selects which mutation a ModifyOrderCommand performs.
type ModifyAction int

const (
	// ModifyAddItem adds a menu item to the order.
	ModifyAddItem ModifyAction = iota + 1
	// ModifyRemoveItem removes a line item by name.
	ModifyRemoveItem
	// ModifyChangeQuantity changes the quantity of a line item.
	ModifyChangeQuantity
	// ModifyChangeAddress changes the delivery address.
	ModifyChangeAddress
	// ModifyChangeDeliveryTime changes the requested delivery time.
	ModifyChangeDeliveryTime
)

// ModifyOrderCommand represents a customer's request to change their own
// pending order: item composition, delivery address, or delivery time.
// The order total is recomputed live by the aggregate after any change.
type ModifyOrderCommand struct { //nolint:recvcheck //using for validation
	customerEmail string
	orderID       int64
	action        ModifyAction
	itemName      string
	quantity      int
	address       string
	deliveryAt    time.Time

	guard guard.ConstructorGuard
}

// NewModifyOrderCommand creates a command to modify an order.
// Validation depends on the action: item actions require an item name,
// quantity changes and additions require a positive quantity, address and
// delivery-time changes require their respective values.
func NewModifyOrderCommand(
	customerEmail string,
	orderID int64,
	action ModifyAction,
	itemName string,
	quantity int,
	address string,
	deliveryAt time.Time,
) (ModifyOrderCommand, error) {
	cmd := ModifyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerEmail(customerEmail),
		cmd.setOrderID(orderID),
		cmd.setAction(action, itemName, quantity, address, deliveryAt),
	); err != nil {
		return ModifyOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrModifyOrderCommandIsNotConstructed if validation fails.
func (c ModifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrModifyOrderCommandIsNotConstructed)
}

// CustomerEmail returns the requesting customer's email.
func (c ModifyOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// OrderID returns the id of the order to modify.
func (c ModifyOrderCommand) OrderID() int64 {
	return c.orderID
}

// Action returns the requested mutation.
func (c ModifyOrderCommand) Action() ModifyAction {
	return c.action
}

// ItemName returns the target item name for item actions.
func (c ModifyOrderCommand) ItemName() string {
	return c.itemName
}

// Quantity returns the quantity for add and change-quantity actions.
func (c ModifyOrderCommand) Quantity() int {
	return c.quantity
}

// Address returns the new delivery address for address changes.
func (c ModifyOrderCommand) Address() string {
	return c.address
}

// DeliveryAt returns the new delivery time for delivery-time changes.
func (c ModifyOrderCommand) DeliveryAt() time.Time {
	return c.deliveryAt
}

func (c *ModifyOrderCommand) setCustomerEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrCustomerEmailIsInvalid
	}

	c.customerEmail = email
	return nil
}

func (c *ModifyOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *ModifyOrderCommand) setAction(
	action ModifyAction,
	itemName string,
	quantity int,
	address string,
	deliveryAt time.Time,
) error {
	switch action {
	case ModifyAddItem, ModifyChangeQuantity:
		if itemName == "" {
			return ErrItemNameIsRequired
		}
		if quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
		c.itemName, c.quantity = itemName, quantity
	case ModifyRemoveItem:
		if itemName == "" {
			return ErrItemNameIsRequired
		}
		c.itemName = itemName
	case ModifyChangeAddress:
		if address == "" {
			return ErrAddressIsRequired
		}
		c.address = address
	case ModifyChangeDeliveryTime:
		if deliveryAt.IsZero() {
			return ErrDeliveryTimeIsRequired
		}
		c.deliveryAt = deliveryAt
	default:
		return ErrModifyActionIsInvalid
	}

	c.action = action
	return nil
}
