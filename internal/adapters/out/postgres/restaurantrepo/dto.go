// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence, including menus, special offers, and the
// positional encoding of each restaurant's processing queue.
package restaurantrepo

import (
	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
type RestaurantDTO struct {
	ID         string            `gorm:"primaryKey"`
	Name       string
	Email      string
	Menus      []MenuDTO         `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnDelete:CASCADE"`
	Offers     []SpecialOfferDTO `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnDelete:CASCADE"`
	QueueSlots []QueueSlotDTO    `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuDTO represents one named menu of a restaurant.
type MenuDTO struct {
	ID           string        `gorm:"primaryKey"`
	RestaurantID string        `gorm:"index"`
	Name         string
	Items        []FoodItemDTO `gorm:"foreignKey:MenuID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for menus.
func (MenuDTO) TableName() string {
	return "menus"
}

// FoodItemDTO represents one menu item; the name is unique within a menu.
type FoodItemDTO struct {
	MenuID      string `gorm:"primaryKey"`
	Name        string `gorm:"primaryKey"`
	Description string
	PriceCents  int64
}

// TableName specifies the database table name for menu items.
func (FoodItemDTO) TableName() string {
	return "food_items"
}

// SpecialOfferDTO represents a restaurant's special offer.
type SpecialOfferDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID    string    `gorm:"index"`
	Name            string
	DiscountPercent int
}

// TableName specifies the database table name for special offers.
func (SpecialOfferDTO) TableName() string {
	return "special_offers"
}

// QueueSlotDTO encodes one position of a restaurant's processing queue.
// Position 0 is the queue head; positions are rewritten on every update.
type QueueSlotDTO struct {
	RestaurantID string `gorm:"primaryKey"`
	Position     int    `gorm:"primaryKey;autoIncrement:false"`
	OrderID      int64
}

// TableName specifies the database table name for queue slots.
func (QueueSlotDTO) TableName() string {
	return "queue_slots"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	menus := make([]MenuDTO, 0, len(aggregate.Menus()))
	for _, menu := range aggregate.Menus() {
		items := make([]FoodItemDTO, 0, len(menu.Items()))
		for _, item := range menu.Items() {
			items = append(items, FoodItemDTO{
				MenuID:      menu.ID(),
				Name:        item.Name(),
				Description: item.Description(),
				PriceCents:  item.Price().Cents(),
			})
		}
		menus = append(menus, MenuDTO{
			ID:           menu.ID(),
			RestaurantID: aggregate.ID(),
			Name:         menu.Name(),
			Items:        items,
		})
	}

	offers := make([]SpecialOfferDTO, 0, len(aggregate.Offers()))
	for _, offer := range aggregate.Offers() {
		offers = append(offers, SpecialOfferDTO{
			ID:              offer.ID(),
			RestaurantID:    aggregate.ID(),
			Name:            offer.Name(),
			DiscountPercent: offer.DiscountPercent(),
		})
	}

	slots := make([]QueueSlotDTO, 0, aggregate.QueueLen())
	for position, orderID := range aggregate.Queue() {
		slots = append(slots, QueueSlotDTO{
			RestaurantID: aggregate.ID(),
			Position:     position,
			OrderID:      orderID,
		})
	}

	return RestaurantDTO{
		ID:         aggregate.ID(),
		Name:       aggregate.Name(),
		Email:      aggregate.Email(),
		Menus:      menus,
		Offers:     offers,
		QueueSlots: slots,
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate using RestoreRestaurant.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	menus := make([]*restaurant.Menu, 0, len(dto.Menus))
	for _, menuDTO := range dto.Menus {
		menu, err := restaurant.NewMenu(menuDTO.ID, menuDTO.Name)
		if err != nil {
			return nil, err
		}

		for _, itemDTO := range menuDTO.Items {
			item, err := restaurant.NewFoodItem(itemDTO.Name, itemDTO.Description,
				kernel.NewMoneyFromCents(itemDTO.PriceCents))
			if err != nil {
				return nil, err
			}
			if err = menu.AddFoodItem(item); err != nil {
				return nil, err
			}
		}

		menus = append(menus, menu)
	}

	offers := make([]*restaurant.SpecialOffer, 0, len(dto.Offers))
	for _, offerDTO := range dto.Offers {
		offer, err := restaurant.RestoreSpecialOffer(offerDTO.ID, offerDTO.Name, offerDTO.DiscountPercent)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	queue := make([]int64, len(dto.QueueSlots))
	for _, slot := range dto.QueueSlots {
		queue[slot.Position] = slot.OrderID
	}

	return restaurant.RestoreRestaurant(dto.ID, dto.Name, dto.Email, menus, offers, queue)
}
