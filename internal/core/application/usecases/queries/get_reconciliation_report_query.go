package queries

import (
	"errors"

	"gruberoo/internal/pkg/guard"
)

var (
	ErrGetReconciliationReportQueryIsNotConstructed = errors.New(
		"GetReconciliationReportQuery must be created via NewGetReconciliationReportQuery constructor",
	)
)

// GetReconciliationReportQuery produces the revenue vs refunds report
// across the whole order ledger.
//
// Example:
//
//	query := NewGetReconciliationReportQuery()
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("final earned: %s\n", report.Final)
type GetReconciliationReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReconciliationReportQuery creates a query for the reconciliation report.
func NewGetReconciliationReportQuery() GetReconciliationReportQuery {
	return GetReconciliationReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReconciliationReportQuery) Validate() error {
	return q.guard.Validate(ErrGetReconciliationReportQueryIsNotConstructed)
}
