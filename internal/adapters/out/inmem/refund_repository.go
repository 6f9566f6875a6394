package inmem

import (
	"context"

	"gruberoo/internal/core/domain/model/refund"
)

// RefundRepository is the in-memory ports.RefundRepository.
type RefundRepository struct {
	store *Store
}

// NewRefundRepository creates a refund repository over the given store.
func NewRefundRepository(store *Store) *RefundRepository {
	return &RefundRepository{store: store}
}

// Push appends an entry to the top of the refund ledger.
func (r *RefundRepository) Push(_ context.Context, entry refund.Entry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.refunds.Push(entry.OrderID, entry.PushedAt)
}

// Snapshot retrieves the full ledger top-first.
func (r *RefundRepository) Snapshot(_ context.Context) ([]refund.Entry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.refunds.Snapshot(), nil
}
