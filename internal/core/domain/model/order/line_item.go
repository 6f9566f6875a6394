package order

import (
	"errors"

	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/pkg/errs"
	"gruberoo/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when using a LineItem that was not
// created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object describing one ordered dish. It holds a copy
// of the catalog item's name, description and unit price captured at order
// time, plus the ordered quantity. The copy is deliberate: later catalog
// edits must not retroactively change historical orders.
type LineItem struct {
	name        string
	description string
	unitPrice   kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewLineItem creates a LineItem. The name is required, the unit price must
// not be negative, and the quantity must be positive.
func NewLineItem(name, description string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	item.description = description
	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// Name returns the captured item name.
func (li LineItem) Name() string {
	return li.name
}

// Description returns the captured item description.
func (li LineItem) Description() string {
	return li.description
}

// UnitPrice returns the price captured at order time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns unit price multiplied by quantity.
func (li LineItem) Subtotal() kernel.Money {
	return li.unitPrice.MulQty(li.quantity)
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setUnitPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("unit price")
	}
	li.unitPrice = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("quantity must be greater than 0"))
	}
	li.quantity = quantity
	return nil
}
