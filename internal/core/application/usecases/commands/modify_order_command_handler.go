package commands

import (
	"context"
	"fmt"

	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/pkg/errs"
)

// ModifyOrderCommandHandler handles modification of pending orders.
// Added items are resolved against the restaurant's current menus so the
// order captures name, description, and price by value.
type ModifyOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewModifyOrderCommandHandler creates a handler for order modification.
// Requires a PlacementUoWFactory for transactional persistence.
func NewModifyOrderCommandHandler(uowFactory PlacementUoWFactory) ModifyOrderCommandHandler {
	return ModifyOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the modification command.
// An order belonging to a different customer is reported as not found.
// Orders in a terminal status reject every mutation with a transition error.
func (h *ModifyOrderCommandHandler) Handle(ctx context.Context, cmd ModifyOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.CustomerEmail() != cmd.CustomerEmail() {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	switch cmd.Action() {
	case ModifyAddItem:
		err = h.addItem(ctx, uow, o, cmd)
	case ModifyRemoveItem:
		err = o.RemoveItem(cmd.ItemName())
	case ModifyChangeQuantity:
		err = o.ChangeItemQuantity(cmd.ItemName(), cmd.Quantity())
	case ModifyChangeAddress:
		err = o.ChangeDeliveryAddress(cmd.Address())
	case ModifyChangeDeliveryTime:
		err = o.ChangeDeliveryTime(cmd.DeliveryAt())
	default:
		err = ErrModifyActionIsInvalid
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ModifyOrderCommandHandler) addItem(
	ctx context.Context,
	uow PlacementUoW,
	o *order.Order,
	cmd ModifyOrderCommand,
) error {
	rest, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return err
	}

	foodItem, ok := rest.FindFoodItem(cmd.ItemName())
	if !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("menu item %q", cmd.ItemName()))
	}

	lineItem, err := order.NewLineItem(foodItem.Name(), foodItem.Description(), foodItem.Price(), cmd.Quantity())
	if err != nil {
		return err
	}

	return o.AddItem(lineItem)
}
