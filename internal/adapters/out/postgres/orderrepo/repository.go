package orderrepo

import (
	"context"
	"errors"
	"time"

	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const firstOrderID = 1001

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// Line items are replaced wholesale so removals stick.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Omit("Items").
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by its id, line items included.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full ledger ordered by id ascending.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(ctx, r.db.WithContext(ctx))
}

// GetAllByRestaurant retrieves a restaurant's orders ordered by id ascending.
func (r *GormOrderRepository) GetAllByRestaurant(ctx context.Context, restaurantID string) ([]*order.Order, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID))
}

// GetAllByCustomer retrieves a customer's orders ordered by id ascending.
func (r *GormOrderRepository) GetAllByCustomer(ctx context.Context, customerEmail string) ([]*order.Order, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).Where("customer_email = ?", customerEmail))
}

// GetAllPendingOlderThan retrieves pending orders created at or before the cutoff.
func (r *GormOrderRepository) GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	return r.findAll(ctx, r.db.WithContext(ctx).
		Where("status = ?", int(order.Pending)).
		Where("created_at <= ?", cutoff))
}

// NextID allocates the next sequential order id, starting from 1001.
// The counter row is created lazily and incremented atomically. Imported
// orders carry their own ids, so the allocator also skips past the
// current ledger maximum.
func (r *GormOrderRepository) NextID(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&CounterDTO{ID: 1, NextID: firstOrderID}).Error; err != nil {
		return 0, err
	}

	var id int64
	err := db.Raw(`
		UPDATE order_counters
		SET next_id = GREATEST(
			next_id,
			(SELECT COALESCE(MAX(id), ?) + 1 FROM orders)
		) + 1
		WHERE id = 1
		RETURNING next_id - 1
	`, firstOrderID-1).Scan(&id).Error
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *GormOrderRepository) findAll(_ context.Context, tx *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := tx.Preload("Items").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
