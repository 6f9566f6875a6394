package queries

import (
	"context"

	"gruberoo/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetRestaurantCatalogQueryHandler reads the restaurant catalog straight
// from the database, bypassing the aggregates.
type GetRestaurantCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantCatalogQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantCatalogQueryHandler(db *gorm.DB) GetRestaurantCatalogQueryHandler {
	return GetRestaurantCatalogQueryHandler{db: db}
}

// Handle executes the query to retrieve every restaurant with its menus
// and items. Restaurants are sorted by id, menus and items by name.
func (h GetRestaurantCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantCatalogQuery,
) ([]GetRestaurantCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants := make([]GetRestaurantCatalogQueryResponse, 0)
	restaurantIndex := make(map[string]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email
		FROM restaurants
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rest GetRestaurantCatalogQueryResponse

		if err = rows.Scan(&rest.ID, &rest.Name, &rest.Email); err != nil {
			return nil, err
		}

		rest.Menus = make([]MenuResponse, 0)
		restaurantIndex[rest.ID] = len(restaurants)
		restaurants = append(restaurants, rest)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	menuIndex := make(map[string]struct{ restaurant, menu int })

	menuRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			name
		FROM menus
		ORDER BY restaurant_id, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer menuRows.Close()

	for menuRows.Next() {
		var menu MenuResponse
		var restaurantID string

		if err = menuRows.Scan(&menu.ID, &restaurantID, &menu.Name); err != nil {
			return nil, err
		}

		ri, ok := restaurantIndex[restaurantID]
		if !ok {
			continue
		}

		menu.Items = make([]FoodItemResponse, 0)
		menuIndex[menu.ID] = struct{ restaurant, menu int }{ri, len(restaurants[ri].Menus)}
		restaurants[ri].Menus = append(restaurants[ri].Menus, menu)
	}
	if err = menuRows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_id,
			name,
			description,
			price_cents
		FROM food_items
		ORDER BY menu_id, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item FoodItemResponse
		var menuID string
		var priceCents int64

		if err = itemRows.Scan(&menuID, &item.Name, &item.Description, &priceCents); err != nil {
			return nil, err
		}
		item.Price = kernel.NewMoneyFromCents(priceCents)

		pos, ok := menuIndex[menuID]
		if !ok {
			continue
		}
		restaurants[pos.restaurant].Menus[pos.menu].Items =
			append(restaurants[pos.restaurant].Menus[pos.menu].Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
