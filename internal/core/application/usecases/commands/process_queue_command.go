package commands

import (
	"errors"

	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/pkg/guard"
)

var (
	ErrProcessQueueCommandIsNotConstructed = errors.New(
		"ProcessQueueCommand must be created via NewProcessQueueCommand constructor",
	)
	ErrDecisionFuncIsRequired = errors.New("decision function is required")
)

// Disposition is the action requested for one dequeued order.
type Disposition int

const (
	// DispositionSkip leaves the order unchanged and re-enqueues it.
	DispositionSkip Disposition = iota
	// DispositionConfirm moves a pending order to preparing and re-enqueues it.
	DispositionConfirm
	// DispositionReject moves a pending order to rejected, pushes it onto the
	// refund ledger, and archives it off the queue.
	DispositionReject
	// DispositionDeliver moves a preparing order to delivered and archives it.
	DispositionDeliver
)

// DecisionFunc chooses a disposition for each order dequeued during a
// processing pass. The caller supplies it; interactive drivers map operator
// input onto it.
type DecisionFunc func(o *order.Order) Disposition

// OrderOutcome reports what happened to one order during a processing pass.
// When the requested transition was not allowed from the order's status,
// Err carries the transition error and the order was re-enqueued unchanged.
type OrderOutcome struct {
	OrderID  int64
	Applied  Disposition
	Status   order.Status
	Requeued bool
	Err      error
}

// ProcessQueueCommand represents a request to run one processing pass over
// a restaurant's order queue.
//
// Example:
//
//	cmd, err := NewProcessQueueCommand("r-1", func(o *order.Order) commands.Disposition {
//	    if o.Status() == order.Preparing {
//	        return commands.DispositionDeliver
//	    }
//	    return commands.DispositionConfirm
//	})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewProcessQueueCommandHandler(uowFactory)
//	outcomes, err := handler.Handle(ctx, cmd)
type ProcessQueueCommand struct { //nolint:recvcheck //using for validation
	restaurantID string
	decide       DecisionFunc

	guard guard.ConstructorGuard
}

// NewProcessQueueCommand creates a command to process a restaurant's queue.
// Validates that the restaurant id and decision function are present.
func NewProcessQueueCommand(restaurantID string, decide DecisionFunc) (ProcessQueueCommand, error) {
	cmd := ProcessQueueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setDecide(decide),
	); err != nil {
		return ProcessQueueCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessQueueCommandIsNotConstructed if validation fails.
func (c ProcessQueueCommand) Validate() error {
	return c.guard.Validate(ErrProcessQueueCommandIsNotConstructed)
}

// RestaurantID returns the restaurant whose queue is processed.
func (c ProcessQueueCommand) RestaurantID() string {
	return c.restaurantID
}

// Decide returns the decision function applied to each dequeued order.
func (c ProcessQueueCommand) Decide() DecisionFunc {
	return c.decide
}

func (c *ProcessQueueCommand) setRestaurantID(id string) error {
	if id == "" {
		return ErrRestaurantIDIsRequired
	}

	c.restaurantID = id
	return nil
}

func (c *ProcessQueueCommand) setDecide(decide DecisionFunc) error {
	if decide == nil {
		return ErrDecisionFuncIsRequired
	}

	c.decide = decide
	return nil
}
