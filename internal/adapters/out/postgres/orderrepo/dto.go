// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in a child table and are loaded eagerly whenever an order
// is read, since the total is always recomputed from them.
type OrderDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement:false"`
	CustomerEmail  string `gorm:"index"`
	RestaurantID   string `gorm:"index"`
	CreatedAt      time.Time
	DeliveryAt     time.Time
	Address        string
	PaymentMethod  string
	Paid           bool
	Status         int `gorm:"index"`
	SpecialRequest string
	AppliedOfferID *uuid.UUID     `gorm:"type:uuid"`
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one priced line item of a persisted order.
// Name is unique within an order; price is captured in cents at order time.
type OrderItemDTO struct {
	OrderID        int64  `gorm:"primaryKey;autoIncrement:false"`
	Name           string `gorm:"primaryKey"`
	Description    string
	UnitPriceCents int64
	Quantity       int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// CounterDTO backs the sequential order id allocator.
// A single row holds the next id to hand out.
type CounterDTO struct {
	ID     int `gorm:"primaryKey;autoIncrement:false"`
	NextID int64
}

// TableName specifies the database table name for the id counter.
func (CounterDTO) TableName() string {
	return "order_counters"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:        aggregate.ID(),
			Name:           item.Name(),
			Description:    item.Description(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID(),
		CustomerEmail:  aggregate.CustomerEmail(),
		RestaurantID:   aggregate.RestaurantID(),
		CreatedAt:      aggregate.CreatedAt(),
		DeliveryAt:     aggregate.DeliveryAt(),
		Address:        aggregate.Address(),
		PaymentMethod:  aggregate.PaymentMethod(),
		Paid:           aggregate.Paid(),
		Status:         int(aggregate.Status()),
		SpecialRequest: aggregate.SpecialRequest(),
		AppliedOfferID: aggregate.AppliedOfferID(),
		Items:          items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewLineItem(itemDTO.Name, itemDTO.Description,
			kernel.NewMoneyFromCents(itemDTO.UnitPriceCents), itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerEmail,
		dto.RestaurantID,
		dto.CreatedAt,
		dto.DeliveryAt,
		dto.Address,
		dto.PaymentMethod,
		dto.Paid,
		order.Status(dto.Status),
		items,
		dto.SpecialRequest,
		dto.AppliedOfferID,
	)
}
