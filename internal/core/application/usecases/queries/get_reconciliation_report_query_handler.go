package queries

import (
	"context"
	"errors"

	"gruberoo/internal/core/domain/services"
	"gruberoo/internal/core/ports"
)

var ErrOrderRepositoryIsRequired = errors.New("order repository must not be nil")

// GetReconciliationReportQueryHandler walks the full order ledger and
// delegates the arithmetic to the domain reconciler. It reads through the
// repository port so archived orders stay visible to reporting even though
// they no longer sit on any restaurant queue.
type GetReconciliationReportQueryHandler struct {
	orderRepository ports.OrderRepository
	reconciler      services.Reconciler
}

// NewGetReconciliationReportQueryHandler creates a handler for reconciliation queries.
func NewGetReconciliationReportQueryHandler(
	orderRepository ports.OrderRepository,
) (GetReconciliationReportQueryHandler, error) {
	if orderRepository == nil {
		return GetReconciliationReportQueryHandler{}, ErrOrderRepositoryIsRequired
	}
	return GetReconciliationReportQueryHandler{
		orderRepository: orderRepository,
		reconciler:      services.NewReconciler(),
	}, nil
}

// Handle builds the per-restaurant and company-wide revenue report.
func (h GetReconciliationReportQueryHandler) Handle(
	ctx context.Context,
	query GetReconciliationReportQuery,
) (services.Report, error) {
	if err := query.Validate(); err != nil {
		return services.Report{}, err
	}

	orders, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return services.Report{}, err
	}

	return h.reconciler.Reconcile(orders)
}
