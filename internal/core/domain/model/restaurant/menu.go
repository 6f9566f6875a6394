package restaurant

import (
	"errors"

	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/pkg/errs"
	"gruberoo/internal/pkg/guard"
)

var (
	// ErrFoodItemIsNotConstructed is returned when using a FoodItem that was
	// not created via NewFoodItem.
	ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem constructor")

	// ErrMenuIsNotConstructed is returned when using a Menu that was not
	// created via NewMenu.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

	// ErrDuplicateFoodItem is returned when adding an item whose name already
	// exists on the menu. Item names are unique within a menu.
	ErrDuplicateFoodItem = errors.New("food item with this name already exists on the menu")
)

// FoodItem is immutable reference data describing a dish a restaurant sells:
// a name (unique within its menu), a description, and a non-negative unit
// price. Orders never reference a FoodItem directly; they capture a copy of
// its fields at order time, so later catalog edits do not change history.
type FoodItem struct {
	name        string
	description string
	price       kernel.Money

	guard guard.ConstructorGuard
}

// NewFoodItem creates a FoodItem. The name is required and the price must
// not be negative.
func NewFoodItem(name, description string, price kernel.Money) (FoodItem, error) {
	if name == "" {
		return FoodItem{}, errs.NewValueIsRequiredError("item name")
	}
	if price.IsNegative() {
		return FoodItem{}, errs.NewValueIsInvalidError("item price")
	}

	return FoodItem{
		name:        name,
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the FoodItem was created through NewFoodItem.
func (f FoodItem) Validate() error {
	return f.guard.Validate(ErrFoodItemIsNotConstructed)
}

// Name returns the item's name.
func (f FoodItem) Name() string {
	return f.name
}

// Description returns the item's description.
func (f FoodItem) Description() string {
	return f.description
}

// Price returns the item's unit price.
func (f FoodItem) Price() kernel.Money {
	return f.price
}

// Menu is an ordered collection of food items owned by exactly one
// restaurant.
type Menu struct {
	id    string
	name  string
	items []FoodItem

	guard guard.ConstructorGuard
}

// NewMenu creates an empty Menu with the given identifier and display name.
func NewMenu(id, name string) (*Menu, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("menu id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("menu name")
	}

	return &Menu{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Menu was created through NewMenu.
func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

// ID returns the menu's identifier.
func (m *Menu) ID() string {
	return m.id
}

// Name returns the menu's display name.
func (m *Menu) Name() string {
	return m.name
}

// Items returns the menu's food items in insertion order.
// The returned slice is a copy; mutating it does not affect the menu.
func (m *Menu) Items() []FoodItem {
	items := make([]FoodItem, len(m.items))
	copy(items, m.items)
	return items
}

// AddFoodItem appends an item to the menu. Item names are unique within a
// menu; adding a duplicate name fails with ErrDuplicateFoodItem.
func (m *Menu) AddFoodItem(item FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if _, ok := m.FindFoodItem(item.Name()); ok {
		return ErrDuplicateFoodItem
	}

	m.items = append(m.items, item)
	return nil
}

// RemoveFoodItem removes the item with the given name.
// Reports whether an item was removed.
func (m *Menu) RemoveFoodItem(name string) bool {
	for i, item := range m.items {
		if item.Name() == name {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// FindFoodItem looks up an item by name.
func (m *Menu) FindFoodItem(name string) (FoodItem, bool) {
	for _, item := range m.items {
		if item.Name() == name {
			return item, true
		}
	}
	return FoodItem{}, false
}
