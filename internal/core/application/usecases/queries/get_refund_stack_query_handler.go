package queries

import (
	"context"
	"errors"

	"gruberoo/internal/core/domain/model/refund"
	"gruberoo/internal/core/ports"
)

var ErrRefundRepositoryIsRequired = errors.New("refund repository must not be nil")

// GetRefundStackQueryHandler reads the refund ledger through the repository
// port, so the snapshot is identical regardless of the storage backend.
type GetRefundStackQueryHandler struct {
	refundRepository ports.RefundRepository
}

// NewGetRefundStackQueryHandler creates a handler for refund ledger queries.
func NewGetRefundStackQueryHandler(
	refundRepository ports.RefundRepository,
) (GetRefundStackQueryHandler, error) {
	if refundRepository == nil {
		return GetRefundStackQueryHandler{}, ErrRefundRepositoryIsRequired
	}
	return GetRefundStackQueryHandler{refundRepository: refundRepository}, nil
}

// Handle returns the refund entries top-first, the order they would be
// popped in.
func (h GetRefundStackQueryHandler) Handle(
	ctx context.Context,
	query GetRefundStackQuery,
) ([]refund.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.refundRepository.Snapshot(ctx)
}
