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

func cancelOrder(store *inmem.Store, email string, orderID int64) error {
	cmd, err := commands.NewCancelOrderCommand(email, orderID)
	if err != nil {
		return err
	}

	h := commands.NewCancelOrderCommandHandler(triageFactory{store})
	return h.Handle(context.Background(), cmd)
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels a pending order, refunds it, and clears the queue slot", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})

		require.NoError(t, cancelOrder(store, "alice@example.com", id))

		o, err := inmem.NewOrderRepository(store).Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())

		rest, err := inmem.NewRestaurantRepository(store).Get(ctx, "r-1")
		require.NoError(t, err)
		assert.Zero(t, rest.QueueLen())

		entries, err := inmem.NewRefundRepository(store).Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, id, entries[0].OrderID)
	})

	t.Run("another customer's order is reported as not found", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})

		err := cancelOrder(store, "mallory@example.com", id)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		o, getErr := inmem.NewOrderRepository(store).Get(ctx, id)
		require.NoError(t, getErr)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("a preparing order cannot be cancelled", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})
		processQueue(t, store, decideAll(commands.DispositionConfirm))

		err := cancelOrder(store, "alice@example.com", id)
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)

		// still queued, still preparing
		rest, getErr := inmem.NewRestaurantRepository(store).Get(ctx, "r-1")
		require.NoError(t, getErr)
		assert.Equal(t, []int64{id}, rest.Queue())
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		store := seedStore(t)

		err := cancelOrder(store, "alice@example.com", 9999)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("constructor rejects bad input", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand("not-an-email", 1001)
		require.ErrorIs(t, err, commands.ErrCustomerEmailIsInvalid)

		_, err = commands.NewCancelOrderCommand("alice@example.com", 0)
		require.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
	})
}
