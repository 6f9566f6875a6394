package ports

import (
	"context"

	"gruberoo/internal/core/domain/model/refund"
)

// RefundRepository defines the persistence contract for the refund ledger.
// The ledger is append-only: entries are pushed when an order is rejected
// or cancelled and are never removed.
type RefundRepository interface {
	// Push appends an entry to the top of the refund ledger.
	Push(ctx context.Context, entry refund.Entry) error

	// Snapshot retrieves the full ledger top-first, most recent entry first.
	Snapshot(ctx context.Context) ([]refund.Entry, error)
}
