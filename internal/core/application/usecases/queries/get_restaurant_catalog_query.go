package queries

import (
	"errors"

	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/pkg/guard"
)

var (
	ErrGetRestaurantCatalogQueryIsNotConstructed = errors.New(
		"GetRestaurantCatalogQuery must be created via NewGetRestaurantCatalogQuery constructor",
	)
)

// GetRestaurantCatalogQuery retrieves the full restaurant catalog:
// every restaurant with its menus and menu items.
//
// Example:
//
//	query := NewGetRestaurantCatalogQuery()
//	handler := NewGetRestaurantCatalogQueryHandler(db)
//
//	catalog, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get catalog: %w", err)
//	}
//
//	for _, rest := range catalog {
//	    fmt.Printf("%s (%d menus)\n", rest.Name, len(rest.Menus))
//	}
type GetRestaurantCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantCatalogQuery creates a query to retrieve the catalog.
// This is a parameterless query that fetches every restaurant.
func NewGetRestaurantCatalogQuery() GetRestaurantCatalogQuery {
	return GetRestaurantCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantCatalogQueryIsNotConstructed)
}

// GetRestaurantCatalogQueryResponse represents one restaurant in the catalog.
type GetRestaurantCatalogQueryResponse struct {
	ID    string
	Name  string
	Email string
	Menus []MenuResponse
}

// MenuResponse represents one named menu with its items.
type MenuResponse struct {
	ID    string
	Name  string
	Items []FoodItemResponse
}

// FoodItemResponse represents one menu item with its captured price.
type FoodItemResponse struct {
	Name        string
	Description string
	Price       kernel.Money
}
