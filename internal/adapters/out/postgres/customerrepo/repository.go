package customerrepo

import (
	"context"
	"errors"

	"gruberoo/internal/core/domain/model/customer"
	"gruberoo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Email(), aggregate)
	return nil
}

// Update saves an existing customer to the database.
// Order links are positional, so the old encoding is dropped and rewritten.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Omit("Orders").
		Model(&CustomerDTO{}).
		Where("email = ?", dto.Email).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := db.Where("customer_email = ?", dto.Email).Delete(&CustomerOrderDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Orders) > 0 {
		if err := db.Create(&dto.Orders).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.Email(), aggregate)
	return nil
}

// Get retrieves a customer by email.
func (r *GormCustomerRepository) Get(ctx context.Context, email string) (*customer.Customer, error) {
	var dto CustomerDTO
	err := r.preloaded(ctx).First(&dto, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every customer ordered by email ascending.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.preloaded(ctx).Order("email").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		cust, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, cust)
	}

	return customers, nil
}

func (r *GormCustomerRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Orders", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
