package restaurantrepo

import (
	"context"
	"errors"

	"gruberoo/internal/core/domain/model/restaurant"
	"gruberoo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant, with menus, offers, and queue slots, to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
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

// Update saves an existing restaurant to the database.
// Queue slots are positional, so the old encoding is dropped and rewritten.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Omit("Menus", "Offers", "QueueSlots").
		Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := db.Where("restaurant_id = ?", dto.ID).Delete(&QueueSlotDTO{}).Error; err != nil {
		return err
	}
	if len(dto.QueueSlots) > 0 {
		if err := db.Create(&dto.QueueSlots).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a restaurant by id, with menus, offers, and queue.
func (r *GormRestaurantRepository) Get(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	var dto RestaurantDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every restaurant ordered by id ascending.
func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.preloaded(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		rest, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, nil
}

func (r *GormRestaurantRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Menus.Items").
		Preload("Menus").
		Preload("Offers").
		Preload("QueueSlots", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		})
}
