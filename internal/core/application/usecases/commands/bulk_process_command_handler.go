package commands

import (
	"context"
	"time"

	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/core/domain/model/refund"
)

// BulkProcessCommandHandler runs the bulk triage sweep over every
// restaurant queue.
//
// Each queue gets one fixed-size pass recorded at the sweep start. Pending
// orders whose delivery time is closer than the threshold are rejected,
// pushed onto the refund ledger, and archived; the rest are confirmed into
// preparing and re-enqueued. Orders in any other status return to their
// queue untouched. A rejected or cancelled order never re-enters a queue.
type BulkProcessCommandHandler struct {
	uowFactory TriageUoWFactory
	now        func() time.Time
}

// NewBulkProcessCommandHandler creates a handler for the bulk triage sweep.
// Requires a TriageUoWFactory for transactional persistence.
func NewBulkProcessCommandHandler(uowFactory TriageUoWFactory) BulkProcessCommandHandler {
	return BulkProcessCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle runs the sweep and reports inspected, confirmed, and rejected
// counts plus the share of the whole order ledger that was inspected.
func (h *BulkProcessCommandHandler) Handle(ctx context.Context, cmd BulkProcessCommand) (BulkProcessResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkProcessResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BulkProcessResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurants, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return BulkProcessResult{}, err
	}

	now := h.now().UTC()
	orderRepo := uow.OrderRepository()

	var result BulkProcessResult
	for _, rest := range restaurants {
		passSize := rest.QueueLen()
		changed := false

		for range passSize {
			id, ok := rest.Dequeue()
			if !ok {
				break
			}

			o, err := orderRepo.Get(ctx, id)
			if err != nil {
				return BulkProcessResult{}, err
			}

			result.Inspected++

			if o.Status() != order.Pending {
				if err = rest.Enqueue(id); err != nil {
					return BulkProcessResult{}, err
				}
				continue
			}

			if o.DeliveryAt().Sub(now) < cmd.Threshold() {
				if err = o.Reject(); err != nil {
					return BulkProcessResult{}, err
				}
				if err = uow.RefundRepository().Push(ctx, refund.Entry{
					OrderID:  id,
					PushedAt: now,
				}); err != nil {
					return BulkProcessResult{}, err
				}
				result.Rejected++
				changed = true
			} else {
				if err = o.Confirm(); err != nil {
					return BulkProcessResult{}, err
				}
				if err = rest.Enqueue(id); err != nil {
					return BulkProcessResult{}, err
				}
				result.MovedToPreparing++
				changed = true
			}

			if err = orderRepo.Update(ctx, o); err != nil {
				return BulkProcessResult{}, err
			}
		}

		if changed || passSize > 0 {
			if err = uow.RestaurantRepository().Update(ctx, rest); err != nil {
				return BulkProcessResult{}, err
			}
		}
	}

	ledger, err := orderRepo.GetAll(ctx)
	if err != nil {
		return BulkProcessResult{}, err
	}
	if len(ledger) > 0 {
		result.InspectedPercent = float64(result.Inspected) / float64(len(ledger)) * 100
	}

	if err = uow.Commit(ctx); err != nil {
		return BulkProcessResult{}, err
	}

	return result, nil
}
