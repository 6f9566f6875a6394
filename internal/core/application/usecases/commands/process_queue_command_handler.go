package commands

import (
	"context"
	"time"

	"gruberoo/internal/core/domain/model/refund"
)

// ProcessQueueCommandHandler runs one processing pass over a restaurant's
// order queue.
//
// The pass is fixed-size: the queue length is recorded at the start and
// exactly that many orders are dequeued, so orders re-enqueued during the
// pass are not seen twice. Each dequeued order receives a disposition from
// the command's decision function:
//
//   - Confirm: pending order moves to preparing and returns to the queue tail
//   - Reject: pending order moves to rejected, is pushed onto the refund
//     ledger, and leaves the queue for good
//   - Deliver: preparing order moves to delivered and leaves the queue
//   - Skip: the order returns to the queue tail unchanged
//
// A disposition the order's status does not allow leaves the order unchanged,
// re-enqueues it, and records the transition error in that order's outcome.
// The pass itself still succeeds.
type ProcessQueueCommandHandler struct {
	uowFactory TriageUoWFactory
	now        func() time.Time
}

// NewProcessQueueCommandHandler creates a handler for queue processing.
// Requires a TriageUoWFactory for transactional persistence.
func NewProcessQueueCommandHandler(uowFactory TriageUoWFactory) ProcessQueueCommandHandler {
	return ProcessQueueCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the queue pass and returns one outcome per dequeued order.
// An empty queue yields an empty outcome list and no work.
func (h *ProcessQueueCommandHandler) Handle(ctx context.Context, cmd ProcessQueueCommand) ([]OrderOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	passSize := rest.QueueLen()
	outcomes := make([]OrderOutcome, 0, passSize)
	orderRepo := uow.OrderRepository()

	for range passSize {
		id, ok := rest.Dequeue()
		if !ok {
			break
		}

		o, err := orderRepo.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		outcome := OrderOutcome{OrderID: id, Applied: cmd.Decide()(o)}

		var transitionErr error
		archived := false

		switch outcome.Applied {
		case DispositionConfirm:
			transitionErr = o.Confirm()
		case DispositionReject:
			if transitionErr = o.Reject(); transitionErr == nil {
				archived = true
				if err = uow.RefundRepository().Push(ctx, refund.Entry{
					OrderID:  id,
					PushedAt: h.now().UTC(),
				}); err != nil {
					return nil, err
				}
			}
		case DispositionDeliver:
			if transitionErr = o.Deliver(); transitionErr == nil {
				archived = true
			}
		case DispositionSkip:
			// unchanged, straight back to the tail
		}

		if transitionErr == nil && outcome.Applied != DispositionSkip {
			if err = orderRepo.Update(ctx, o); err != nil {
				return nil, err
			}
		}

		if !archived {
			if err = rest.Enqueue(id); err != nil {
				return nil, err
			}
		}

		outcome.Status = o.Status()
		outcome.Requeued = !archived
		outcome.Err = transitionErr
		outcomes = append(outcomes, outcome)
	}

	if err = uow.RestaurantRepository().Update(ctx, rest); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return outcomes, nil
}
