package queries

import (
	"context"

	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order ledger from the
// database. Totals are recomputed from the line items on every read.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer ledger queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders of one customer.
// Results are sorted by order id, which matches placement order.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)
	orderIndex := make(map[int64]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			status,
			delivery_at,
			address
		FROM orders
		WHERE customer_email = ?
		ORDER BY id
	`, query.CustomerEmail()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetCustomerOrdersQueryResponse
		var status int

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.RestaurantID,
			&status,
			&orderResp.DeliveryAt,
			&orderResp.Address,
		)
		if err != nil {
			return nil, err
		}

		orderResp.Status = order.Status(status).String()
		orderResp.Items = make([]OrderItemResponse, 0)
		orderIndex[orderResp.ID] = len(orders)
		orders = append(orders, orderResp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.name,
			oi.unit_price_cents,
			oi.quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.customer_email = ?
		ORDER BY oi.order_id, oi.name
	`, query.CustomerEmail()).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID int64
		var item OrderItemResponse
		var unitPriceCents int64

		if err = itemRows.Scan(&orderID, &item.Name, &unitPriceCents, &item.Quantity); err != nil {
			return nil, err
		}
		item.Subtotal = kernel.NewMoneyFromCents(unitPriceCents).MulQty(item.Quantity)

		position, ok := orderIndex[orderID]
		if !ok {
			continue
		}
		orders[position].Items = append(orders[position].Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		total := kernel.NewMoneyFromCents(0)
		for _, item := range orders[i].Items {
			total = total.Add(item.Subtotal)
		}
		if len(orders[i].Items) > 0 {
			total = total.Add(order.DeliveryFee)
		}
		orders[i].Total = total
	}

	return orders, nil
}
