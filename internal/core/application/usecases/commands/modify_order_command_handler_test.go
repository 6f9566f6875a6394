package commands_test

import (
	"context"
	"testing"
	"time"

	"gruberoo/internal/adapters/out/inmem"
	"gruberoo/internal/core/application/usecases/commands"
	"gruberoo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modifyOrder(t *testing.T, store *inmem.Store, cmd commands.ModifyOrderCommand) error {
	t.Helper()
	h := commands.NewModifyOrderCommandHandler(placementFactory{store})
	return h.Handle(context.Background(), cmd)
}

func TestModifyOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("adding an item recomputes the total", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})

		cmd, err := commands.NewModifyOrderCommand("alice@example.com", id,
			commands.ModifyAddItem, "Tiramisu", 2, "", time.Time{})
		require.NoError(t, err)
		require.NoError(t, modifyOrder(t, store, cmd))

		o, err := inmem.NewOrderRepository(store).Get(ctx, id)
		require.NoError(t, err)
		// 12.50 + 2x6.00 + 5.00 delivery fee
		assert.Equal(t, int64(2950), o.Total().Cents())
	})

	t.Run("removing the last item drops the delivery fee", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})

		cmd, err := commands.NewModifyOrderCommand("alice@example.com", id,
			commands.ModifyRemoveItem, "Carbonara", 0, "", time.Time{})
		require.NoError(t, err)
		require.NoError(t, modifyOrder(t, store, cmd))

		o, err := inmem.NewOrderRepository(store).Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, o.Total().IsZero())
	})

	t.Run("changing quantity of a missing item fails", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})

		cmd, err := commands.NewModifyOrderCommand("alice@example.com", id,
			commands.ModifyChangeQuantity, "Pizza", 3, "", time.Time{})
		require.NoError(t, err)
		require.Error(t, modifyOrder(t, store, cmd))
	})

	t.Run("changes delivery address and time", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})
		newAt := fixtureDeliveryAt.Add(time.Hour)

		cmd, err := commands.NewModifyOrderCommand("alice@example.com", id,
			commands.ModifyChangeAddress, "", 0, "2 Side Street", time.Time{})
		require.NoError(t, err)
		require.NoError(t, modifyOrder(t, store, cmd))

		cmd, err = commands.NewModifyOrderCommand("alice@example.com", id,
			commands.ModifyChangeDeliveryTime, "", 0, "", newAt)
		require.NoError(t, err)
		require.NoError(t, modifyOrder(t, store, cmd))

		o, err := inmem.NewOrderRepository(store).Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "2 Side Street", o.Address())
		assert.Equal(t, newAt, o.DeliveryAt())
	})

	t.Run("terminal orders reject modification", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})
		require.NoError(t, cancelOrder(store, "alice@example.com", id))

		cmd, err := commands.NewModifyOrderCommand("alice@example.com", id,
			commands.ModifyChangeAddress, "", 0, "2 Side Street", time.Time{})
		require.NoError(t, err)
		require.ErrorIs(t, modifyOrder(t, store, cmd), errs.ErrInvalidStatusTransition)
	})

	t.Run("another customer's order is reported as not found", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})

		cmd, err := commands.NewModifyOrderCommand("mallory@example.com", id,
			commands.ModifyChangeAddress, "", 0, "2 Side Street", time.Time{})
		require.NoError(t, err)
		require.ErrorIs(t, modifyOrder(t, store, cmd), errs.ErrObjectNotFound)
	})

	t.Run("constructor validates per action", func(t *testing.T) {
		_, err := commands.NewModifyOrderCommand("alice@example.com", 1001,
			commands.ModifyAddItem, "", 1, "", time.Time{})
		require.ErrorIs(t, err, commands.ErrItemNameIsRequired)

		_, err = commands.NewModifyOrderCommand("alice@example.com", 1001,
			commands.ModifyChangeQuantity, "Carbonara", 0, "", time.Time{})
		require.ErrorIs(t, err, commands.ErrItemQuantityIsInvalid)

		_, err = commands.NewModifyOrderCommand("alice@example.com", 1001,
			commands.ModifyAction(0), "", 0, "", time.Time{})
		require.ErrorIs(t, err, commands.ErrModifyActionIsInvalid)
	})
}
