// Package refund provides the LIFO ledger of financially-reversed orders.
// Every rejected or cancelled order is pushed exactly once; the push-once
// property is guaranteed upstream by the order state machine, since both
// transitions require Pending status and Pending is reachable only once.
package refund

import (
	"time"

	"gruberoo/internal/pkg/errs"
)

// Entry is one refund ledger record: the reversed order's id and the moment
// it was pushed.
type Entry struct {
	OrderID  int64
	PushedAt time.Time
}

// Stack is the LIFO refund ledger. The zero value is an empty, usable
// stack. Push appends; Snapshot reads top-first without mutating. The stack
// performs no de-duplication: callers push once per rejection or
// cancellation event.
type Stack struct {
	entries []Entry
}

// NewStack creates an empty refund stack.
func NewStack() *Stack {
	return &Stack{}
}

// RestoreStack reconstructs a stack from persisted entries given
// bottom-first, so a subsequent Snapshot reproduces the stored top-first
// order.
func RestoreStack(bottomFirst []Entry) (*Stack, error) {
	s := NewStack()
	for _, e := range bottomFirst {
		if err := s.Push(e.OrderID, e.PushedAt); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Push records a reversed order on top of the stack.
func (s *Stack) Push(orderID int64, pushedAt time.Time) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	s.entries = append(s.entries, Entry{OrderID: orderID, PushedAt: pushedAt})
	return nil
}

// Snapshot returns the full ledger top-first (most recently pushed first)
// without mutating the stack.
func (s *Stack) Snapshot() []Entry {
	snapshot := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		snapshot[len(s.entries)-1-i] = e
	}
	return snapshot
}

// Len returns the number of entries on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
