package order

import (
	"fmt"

	"gruberoo/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct processing workflow.
//
// State transitions:
//
//	Pending ──┬──> Preparing ──> Delivered
//	          ├──> Rejected
//	          └──> Cancelled
//
// Delivered, Rejected and Cancelled are terminal: no transition leaves them.
// Invalid transition attempts are reported as errors and change nothing, so
// the caller can retry with a different action.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created order, waiting for
	// the restaurant's disposition.
	Pending

	// Preparing indicates the restaurant has confirmed the order and is
	// preparing it.
	Preparing

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Rejected indicates the restaurant declined the order; the amount is
	// owed back to the customer. Terminal.
	Rejected

	// Cancelled indicates the customer withdrew the order before it was
	// confirmed; the amount is owed back to the customer. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Preparing: "Preparing",
		Delivered: "Delivered",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Preparing: "Preparing",
		Delivered: "Delivered",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. This is also the
// representation used by the persisted order record.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses the persisted representation of a status.
// Only valid lifecycle states are accepted.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected || s == Cancelled
}

// Confirm transitions the status to Preparing.
//
// Valid transitions:
//   - Pending -> Preparing
//
// Returns (0, error) wrapping errs.ErrInvalidStatusTransition if the
// current status is not Pending.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStatusTransitionError("confirm", s.String())
	}
	return Preparing, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Rejection is only offered while the order awaits disposition; a confirmed
// order can no longer be rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStatusTransitionError("reject", s.String())
	}
	return Rejected, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Preparing -> Delivered
//
// An order must be confirmed before it can be delivered.
func (s Status) Deliver() (Status, error) {
	if s != Preparing {
		return 0, errs.NewInvalidStatusTransitionError("deliver", s.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Cancellation is offered for pending orders only: once the restaurant has
// started preparing, the order runs to delivery or rejection.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStatusTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}
