package refundrepo

import (
	"context"

	"gruberoo/internal/core/domain/model/refund"
	"gruberoo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRefundRepository implements RefundRepository using GORM.
type GormRefundRepository struct {
	db *gorm.DB
}

// NewGormRefundRepository creates a new GORM refund repository.
func NewGormRefundRepository(db *gorm.DB) *GormRefundRepository {
	return &GormRefundRepository{db: db}
}

// Push appends an entry to the top of the refund ledger.
func (r *GormRefundRepository) Push(ctx context.Context, entry refund.Entry) error {
	if entry.OrderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Snapshot retrieves the full ledger top-first, most recently pushed first.
func (r *GormRefundRepository) Snapshot(ctx context.Context) ([]refund.Entry, error) {
	var dtos []RefundEntryDTO
	if err := r.db.WithContext(ctx).Order("position DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]refund.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, toDomain(dto))
	}

	return entries, nil
}
