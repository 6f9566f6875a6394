package queries

import (
	"errors"

	"gruberoo/internal/pkg/guard"
)

var (
	ErrGetRefundStackQueryIsNotConstructed = errors.New(
		"GetRefundStackQuery must be created via NewGetRefundStackQuery constructor",
	)
)

// GetRefundStackQuery retrieves the refund ledger snapshot, most recent
// entry first.
type GetRefundStackQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRefundStackQuery creates a query to retrieve the refund ledger.
func NewGetRefundStackQuery() GetRefundStackQuery {
	return GetRefundStackQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRefundStackQuery) Validate() error {
	return q.guard.Validate(ErrGetRefundStackQueryIsNotConstructed)
}
