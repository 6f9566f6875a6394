package commands

import (
	"context"
	"fmt"
	"time"

	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Allocates the order id, resolves menu items to priced line items, and
// links the new order into the restaurant queue and the customer's ledger.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("alice@example.com", "r-1",
//	    deliveryAt, "1 Main Street", "CC", "", nil,
//	    []ItemInput{{Name: "Carbonara", Quantity: 2}})
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending at the tail of the restaurant queue
type CreateOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires a PlacementUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory PlacementUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order placement command and returns the allocated order id.
// The restaurant and customer must exist; every requested item must resolve
// to a menu item, with name, description, and price captured by value on the
// order. The order starts pending and unpaid.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, err
	}

	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerEmail())
	if err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(id, cmd.CustomerEmail(), cmd.RestaurantID(),
		h.now().UTC(), cmd.DeliveryAt(), cmd.Address(), cmd.PaymentMethod())
	if err != nil {
		return 0, err
	}

	for _, input := range cmd.Items() {
		foodItem, ok := rest.FindFoodItem(input.Name)
		if !ok {
			return 0, errs.NewValueIsInvalidError(fmt.Sprintf("menu item %q", input.Name))
		}

		lineItem, err := order.NewLineItem(foodItem.Name(), foodItem.Description(), foodItem.Price(), input.Quantity)
		if err != nil {
			return 0, err
		}

		if err = newOrder.AddItem(lineItem); err != nil {
			return 0, err
		}
	}

	if cmd.SpecialRequest() != "" {
		if err = newOrder.ChangeSpecialRequest(cmd.SpecialRequest()); err != nil {
			return 0, err
		}
	}

	if cmd.OfferID() != nil {
		offer, ok := rest.FindOffer(*cmd.OfferID())
		if !ok {
			return 0, errs.NewObjectNotFoundError("offer", *cmd.OfferID())
		}

		if err = newOrder.ApplyOffer(offer.ID()); err != nil {
			return 0, err
		}
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = rest.Enqueue(id); err != nil {
		return 0, err
	}

	if err = uow.RestaurantRepository().Update(ctx, rest); err != nil {
		return 0, err
	}

	if err = cust.AddOrder(id); err != nil {
		return 0, err
	}

	if err = uow.CustomerRepository().Update(ctx, cust); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
