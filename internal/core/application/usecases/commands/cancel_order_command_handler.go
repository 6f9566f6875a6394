package commands

import (
	"context"
	"time"

	"gruberoo/internal/core/domain/model/refund"
	"gruberoo/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer-initiated order cancellation.
// Only pending orders can be cancelled, and only by the customer who placed
// them. A cancelled order is pushed onto the refund ledger and removed from
// its restaurant's queue.
type CancelOrderCommandHandler struct {
	uowFactory TriageUoWFactory
	now        func() time.Time
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a TriageUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory TriageUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the cancellation command.
// An order belonging to a different customer is reported as not found rather
// than forbidden, so order ids cannot be probed. A non-pending order yields
// a transition error and stays unchanged.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.RefundRepository().Push(ctx, refund.Entry{
		OrderID:  o.ID(),
		PushedAt: h.now().UTC(),
	}); err != nil {
		return err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return err
	}

	if rest.RemoveFromQueue(o.ID()) {
		if err = uow.RestaurantRepository().Update(ctx, rest); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
