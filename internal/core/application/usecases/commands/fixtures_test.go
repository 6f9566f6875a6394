package commands_test

import (
	"context"
	"testing"
	"time"

	"gruberoo/internal/adapters/out/inmem"
	"gruberoo/internal/core/application/usecases/commands"
	"gruberoo/internal/core/domain/model/customer"
	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

var (
	fixtureDeliveryAt = time.Date(2026, 8, 1, 18, 30, 0, 0, time.UTC)
)

type placementFactory struct{ store *inmem.Store }

func (f placementFactory) Create() commands.PlacementUoW { return inmem.NewUnitOfWork(f.store) }

type triageFactory struct{ store *inmem.Store }

func (f triageFactory) Create() commands.TriageUoW { return inmem.NewUnitOfWork(f.store) }

// seedStore builds a store with one restaurant ("r-1", Carbonara and
// Tiramisu on the menu) and one customer (alice@example.com).
func seedStore(t *testing.T) *inmem.Store {
	t.Helper()
	ctx := context.Background()
	store := inmem.NewStore()

	menu, err := restaurant.NewMenu("m-1", "Dinner")
	require.NoError(t, err)

	carbonara, err := restaurant.NewFoodItem("Carbonara", "Classic pasta", kernel.NewMoneyFromCents(1250))
	require.NoError(t, err)
	require.NoError(t, menu.AddFoodItem(carbonara))

	tiramisu, err := restaurant.NewFoodItem("Tiramisu", "Dessert", kernel.NewMoneyFromCents(600))
	require.NoError(t, err)
	require.NoError(t, menu.AddFoodItem(tiramisu))

	rest, err := restaurant.NewRestaurant("r-1", "Trattoria", "trattoria@example.com")
	require.NoError(t, err)
	require.NoError(t, rest.AddMenu(menu))
	require.NoError(t, inmem.NewRestaurantRepository(store).Add(ctx, rest))

	alice, err := customer.NewCustomer("Alice", "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, inmem.NewCustomerRepository(store).Add(ctx, alice))

	return store
}

// placeOrder runs the placement use case against the store and returns the
// allocated order id.
func placeOrder(t *testing.T, store *inmem.Store, items []commands.ItemInput) int64 {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand("alice@example.com", "r-1",
		fixtureDeliveryAt, "1 Main Street", "CC", "", nil, items)
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(placementFactory{store})
	id, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)
	return id
}
