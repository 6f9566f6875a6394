package commands_test

import (
	"context"
	"testing"

	"gruberoo/internal/adapters/out/inmem"
	"gruberoo/internal/core/application/usecases/commands"
	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("places a pending order and links restaurant and customer", func(t *testing.T) {
		store := seedStore(t)

		id := placeOrder(t, store, []commands.ItemInput{
			{Name: "Carbonara", Quantity: 2},
			{Name: "Tiramisu", Quantity: 1},
		})

		assert.Equal(t, int64(1001), id)

		o, err := inmem.NewOrderRepository(store).Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.Paid())
		// 2x12.50 + 6.00 + 5.00 delivery fee
		assert.Equal(t, int64(3600), o.Total().Cents())

		rest, err := inmem.NewRestaurantRepository(store).Get(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, []int64{id}, rest.Queue())

		cust, err := inmem.NewCustomerRepository(store).Get(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.True(t, cust.HasOrder(id))
	})

	t.Run("allocates sequential ids", func(t *testing.T) {
		store := seedStore(t)

		first := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})
		second := placeOrder(t, store, []commands.ItemInput{{Name: "Tiramisu", Quantity: 1}})

		assert.Equal(t, int64(1001), first)
		assert.Equal(t, int64(1002), second)

		rest, err := inmem.NewRestaurantRepository(store).Get(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, []int64{first, second}, rest.Queue())
	})

	t.Run("unknown restaurant is not found", func(t *testing.T) {
		store := seedStore(t)

		cmd, err := commands.NewCreateOrderCommand("alice@example.com", "r-404",
			fixtureDeliveryAt, "1 Main Street", "CC", "", nil,
			[]commands.ItemInput{{Name: "Carbonara", Quantity: 1}})
		require.NoError(t, err)

		h := commands.NewCreateOrderCommandHandler(placementFactory{store})
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unknown customer is not found", func(t *testing.T) {
		store := seedStore(t)

		cmd, err := commands.NewCreateOrderCommand("bob@example.com", "r-1",
			fixtureDeliveryAt, "1 Main Street", "CC", "", nil,
			[]commands.ItemInput{{Name: "Carbonara", Quantity: 1}})
		require.NoError(t, err)

		h := commands.NewCreateOrderCommandHandler(placementFactory{store})
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unresolvable menu item is a validation error", func(t *testing.T) {
		store := seedStore(t)

		cmd, err := commands.NewCreateOrderCommand("alice@example.com", "r-1",
			fixtureDeliveryAt, "1 Main Street", "CC", "", nil,
			[]commands.ItemInput{{Name: "Pizza", Quantity: 1}})
		require.NoError(t, err)

		h := commands.NewCreateOrderCommandHandler(placementFactory{store})
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		// nothing was enqueued
		rest, err := inmem.NewRestaurantRepository(store).Get(ctx, "r-1")
		require.NoError(t, err)
		assert.Zero(t, rest.QueueLen())
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		h := commands.NewCreateOrderCommandHandler(placementFactory{inmem.NewStore()})
		_, err := h.Handle(ctx, commands.CreateOrderCommand{})
		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
