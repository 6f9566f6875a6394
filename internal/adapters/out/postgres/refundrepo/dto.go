// Package refundrepo persists the append-only refund ledger.
// Entries are ordered by an auto-incrementing position; the snapshot reads
// them in reverse to reproduce the top-first stack order.
package refundrepo

import (
	"time"

	"gruberoo/internal/core/domain/model/refund"
)

// RefundEntryDTO represents one persisted refund ledger entry.
type RefundEntryDTO struct {
	Position int64 `gorm:"primaryKey;autoIncrement"`
	OrderID  int64 `gorm:"index"`
	PushedAt time.Time
}

// TableName specifies the database table name for refund entries.
func (RefundEntryDTO) TableName() string {
	return "refund_entries"
}

// fromDomain converts a refund entry to its database representation.
func fromDomain(entry refund.Entry) RefundEntryDTO {
	return RefundEntryDTO{
		OrderID:  entry.OrderID,
		PushedAt: entry.PushedAt,
	}
}

// toDomain converts a database DTO to a refund entry.
func toDomain(dto RefundEntryDTO) refund.Entry {
	return refund.Entry{
		OrderID:  dto.OrderID,
		PushedAt: dto.PushedAt,
	}
}
