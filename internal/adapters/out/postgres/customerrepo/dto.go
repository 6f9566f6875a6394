// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. A customer's order ids are kept in a child table
// preserving placement order.
package customerrepo

import (
	"gruberoo/internal/core/domain/model/customer"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	Email  string             `gorm:"primaryKey"`
	Name   string
	Orders []CustomerOrderDTO `gorm:"foreignKey:CustomerEmail;references:Email;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// CustomerOrderDTO links a customer to one of their orders.
// Position preserves placement order.
type CustomerOrderDTO struct {
	CustomerEmail string `gorm:"primaryKey"`
	Position      int    `gorm:"primaryKey;autoIncrement:false"`
	OrderID       int64
}

// TableName specifies the database table name for customer order links.
func (CustomerOrderDTO) TableName() string {
	return "customer_orders"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	orders := make([]CustomerOrderDTO, 0, len(aggregate.OrderIDs()))
	for position, orderID := range aggregate.OrderIDs() {
		orders = append(orders, CustomerOrderDTO{
			CustomerEmail: aggregate.Email(),
			Position:      position,
			OrderID:       orderID,
		})
	}

	return CustomerDTO{
		Email:  aggregate.Email(),
		Name:   aggregate.Name(),
		Orders: orders,
	}
}

// toDomain converts a database DTO to a customer domain aggregate using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	orderIDs := make([]int64, len(dto.Orders))
	for _, link := range dto.Orders {
		orderIDs[link.Position] = link.OrderID
	}

	return customer.RestoreCustomer(dto.Name, dto.Email, orderIDs)
}
