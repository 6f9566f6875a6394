package order

import (
	"errors"
	"time"

	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/pkg/errs"
	"gruberoo/internal/pkg/guard"

	"github.com/google/uuid"
)

// DeliveryFee is the flat fee added to every order total.
var DeliveryFee = kernel.NewMoneyFromCents(500)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemNotFound is returned when removing or editing a line item that
	// is not on the order.
	ErrItemNotFound = errors.New("line item not found on this order")
)

// Order represents a food-delivery order. It is the aggregate root managing
// the order lifecycle from creation through restaurant disposition to a
// terminal state.
//
// Order follows these invariants:
//   - The id is assigned once, is positive, and never changes
//   - Total() always recomputes from the current line items plus the flat
//     delivery fee; there is no cached total to go stale
//   - Line items are owned exclusively by the order and can only be
//     changed through its methods, and only before a terminal status
//   - Status transitions follow the Status state machine; failed
//     transitions leave the order untouched
//
// The customer email and restaurant id are non-owning back-references into
// their respective aggregates; the order's lifetime is governed by the
// ledger that holds it.
type Order struct {
	id             int64
	customerEmail  string
	restaurantID   string
	createdAt      time.Time
	deliveryAt     time.Time
	address        string
	paymentMethod  string
	paid           bool
	status         Status
	items          []LineItem
	specialRequest string
	appliedOfferID *uuid.UUID

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status, unpaid, with no line
// items. The id must be positive and comes from the ledger's allocator,
// never from any shared counter.
func NewOrder(
	id int64,
	customerEmail string,
	restaurantID string,
	createdAt time.Time,
	deliveryAt time.Time,
	address string,
	paymentMethod string,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerEmail(customerEmail),
		o.setRestaurantID(restaurantID),
		o.setCreatedAt(createdAt),
		o.setDeliveryAt(deliveryAt),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence in an arbitrary
// lifecycle state, bypassing the transition rules but not the field
// validation.
func RestoreOrder(
	id int64,
	customerEmail string,
	restaurantID string,
	createdAt time.Time,
	deliveryAt time.Time,
	address string,
	paymentMethod string,
	paid bool,
	status Status,
	items []LineItem,
	specialRequest string,
	appliedOfferID *uuid.UUID,
) (*Order, error) {
	o, err := NewOrder(id, customerEmail, restaurantID, createdAt, deliveryAt, address, paymentMethod)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	o.paid = paid
	o.status = status
	o.items = append(o.items, items...)
	o.specialRequest = specialRequest
	o.appliedOfferID = appliedOfferID
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerEmail returns the email of the customer who placed the order.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// RestaurantID returns the id of the restaurant handling the order.
func (o *Order) RestaurantID() string {
	return o.restaurantID
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryAt returns the requested delivery time.
func (o *Order) DeliveryAt() time.Time {
	return o.deliveryAt
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// PaymentMethod returns the recorded payment method.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Paid reports whether payment has been recorded for the order.
func (o *Order) Paid() bool {
	return o.paid
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items in insertion order.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// SpecialRequest returns the optional free-text request.
func (o *Order) SpecialRequest() string {
	return o.specialRequest
}

// AppliedOfferID returns the id of the special offer applied to the order,
// or nil when none was applied.
func (o *Order) AppliedOfferID() *uuid.UUID {
	return o.appliedOfferID
}

// Total recomputes the order total from the current line items plus the
// flat delivery fee. An order with no items totals zero: there is nothing
// to deliver yet, so no fee applies. The result is never cached; callers
// must not hold on to stale totals across mutations.
func (o *Order) Total() kernel.Money {
	if len(o.items) == 0 {
		return kernel.Money{}
	}

	total := DeliveryFee
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AddItem appends a line item. Only non-terminal orders can be edited.
func (o *Order) AddItem(item LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := o.ensureEditable(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem removes the first line item with the given name.
// Returns ErrItemNotFound when no such item is on the order.
func (o *Order) RemoveItem(name string) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	for i, item := range o.items {
		if item.Name() == name {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// ChangeItemQuantity sets a new positive quantity on the first line item
// with the given name.
func (o *Order) ChangeItemQuantity(name string, quantity int) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	for i, item := range o.items {
		if item.Name() == name {
			replacement, err := NewLineItem(item.Name(), item.Description(), item.UnitPrice(), quantity)
			if err != nil {
				return err
			}
			o.items[i] = replacement
			return nil
		}
	}
	return ErrItemNotFound
}

// ChangeDeliveryAddress updates the delivery address of a non-terminal
// order.
func (o *Order) ChangeDeliveryAddress(address string) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	return o.setAddress(address)
}

// ChangeDeliveryTime updates the requested delivery time of a non-terminal
// order.
func (o *Order) ChangeDeliveryTime(deliveryAt time.Time) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	return o.setDeliveryAt(deliveryAt)
}

// ChangeSpecialRequest updates the free-text request of a non-terminal
// order.
func (o *Order) ChangeSpecialRequest(text string) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	o.specialRequest = text
	return nil
}

// ApplyOffer records the special offer applied to a non-terminal order.
func (o *Order) ApplyOffer(offerID uuid.UUID) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	o.appliedOfferID = &offerID
	return nil
}

// MarkPaid records payment for a non-terminal order.
func (o *Order) MarkPaid() error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	o.paid = true
	return nil
}

// Confirm moves the order from Pending to Preparing.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Reject moves the order from Pending to Rejected. The caller is
// responsible for pushing the order onto the refund ledger and archiving it
// out of the processing queue.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Deliver moves the order from Preparing to Delivered. The caller is
// responsible for archiving it out of the processing queue.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves the order from Pending to Cancelled. The caller is
// responsible for pushing the order onto the refund ledger and removing it
// from the processing queue if present.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ensureEditable rejects mutations once the order reached a terminal
// status.
func (o *Order) ensureEditable() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStatusTransitionError("modify", o.status.String())
	}
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	o.customerEmail = email
	return nil
}

func (o *Order) setRestaurantID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCreatedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = t
	return nil
}

func (o *Order) setDeliveryAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("delivery at")
	}
	o.deliveryAt = t
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = method
	return nil
}
