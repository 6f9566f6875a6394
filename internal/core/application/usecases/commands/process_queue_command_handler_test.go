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

func decideAll(d commands.Disposition) commands.DecisionFunc {
	return func(*order.Order) commands.Disposition { return d }
}

func processQueue(t *testing.T, store *inmem.Store, decide commands.DecisionFunc) []commands.OrderOutcome {
	t.Helper()

	cmd, err := commands.NewProcessQueueCommand("r-1", decide)
	require.NoError(t, err)

	h := commands.NewProcessQueueCommandHandler(triageFactory{store})
	outcomes, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)
	return outcomes
}

func TestProcessQueueCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm moves pending orders to preparing and re-enqueues in order", func(t *testing.T) {
		store := seedStore(t)
		first := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})
		second := placeOrder(t, store, []commands.ItemInput{{Name: "Tiramisu", Quantity: 1}})

		outcomes := processQueue(t, store, decideAll(commands.DispositionConfirm))

		require.Len(t, outcomes, 2)
		assert.Equal(t, first, outcomes[0].OrderID)
		assert.Equal(t, second, outcomes[1].OrderID)
		for _, outcome := range outcomes {
			assert.Equal(t, order.Preparing, outcome.Status)
			assert.True(t, outcome.Requeued)
			assert.NoError(t, outcome.Err)
		}

		rest, err := inmem.NewRestaurantRepository(store).Get(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, []int64{first, second}, rest.Queue())
	})

	t.Run("reject archives the order and pushes the refund ledger", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})

		outcomes := processQueue(t, store, decideAll(commands.DispositionReject))

		require.Len(t, outcomes, 1)
		assert.Equal(t, order.Rejected, outcomes[0].Status)
		assert.False(t, outcomes[0].Requeued)

		rest, err := inmem.NewRestaurantRepository(store).Get(ctx, "r-1")
		require.NoError(t, err)
		assert.Zero(t, rest.QueueLen())

		entries, err := inmem.NewRefundRepository(store).Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, id, entries[0].OrderID)
	})

	t.Run("deliver archives a preparing order", func(t *testing.T) {
		store := seedStore(t)
		placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})
		processQueue(t, store, decideAll(commands.DispositionConfirm))

		outcomes := processQueue(t, store, decideAll(commands.DispositionDeliver))

		require.Len(t, outcomes, 1)
		assert.Equal(t, order.Delivered, outcomes[0].Status)
		assert.False(t, outcomes[0].Requeued)

		rest, err := inmem.NewRestaurantRepository(store).Get(ctx, "r-1")
		require.NoError(t, err)
		assert.Zero(t, rest.QueueLen())
	})

	t.Run("disallowed transition re-enqueues unchanged and reports the error", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})

		// deliver a pending order is not allowed
		outcomes := processQueue(t, store, decideAll(commands.DispositionDeliver))

		require.Len(t, outcomes, 1)
		assert.Equal(t, order.Pending, outcomes[0].Status)
		assert.True(t, outcomes[0].Requeued)
		require.ErrorIs(t, outcomes[0].Err, errs.ErrInvalidStatusTransition)

		rest, err := inmem.NewRestaurantRepository(store).Get(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, []int64{id}, rest.Queue())
	})

	t.Run("skip leaves the order pending at the tail", func(t *testing.T) {
		store := seedStore(t)
		id := placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})

		outcomes := processQueue(t, store, decideAll(commands.DispositionSkip))

		require.Len(t, outcomes, 1)
		assert.Equal(t, order.Pending, outcomes[0].Status)
		assert.True(t, outcomes[0].Requeued)

		rest, err := inmem.NewRestaurantRepository(store).Get(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, []int64{id}, rest.Queue())
	})

	t.Run("pass is bounded by queue length at start", func(t *testing.T) {
		store := seedStore(t)
		placeOrder(t, store, []commands.ItemInput{{Name: "Carbonara", Quantity: 1}})
		placeOrder(t, store, []commands.ItemInput{{Name: "Tiramisu", Quantity: 1}})

		// every order is re-enqueued, so an unbounded pass would never stop
		outcomes := processQueue(t, store, decideAll(commands.DispositionConfirm))
		assert.Len(t, outcomes, 2)
	})

	t.Run("empty queue yields no outcomes", func(t *testing.T) {
		store := seedStore(t)

		outcomes := processQueue(t, store, decideAll(commands.DispositionConfirm))
		assert.Empty(t, outcomes)
	})

	t.Run("unknown restaurant is not found", func(t *testing.T) {
		cmd, err := commands.NewProcessQueueCommand("r-404", decideAll(commands.DispositionConfirm))
		require.NoError(t, err)

		h := commands.NewProcessQueueCommandHandler(triageFactory{inmem.NewStore()})
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("constructor rejects missing decision function", func(t *testing.T) {
		_, err := commands.NewProcessQueueCommand("r-1", nil)
		require.ErrorIs(t, err, commands.ErrDecisionFuncIsRequired)
	})
}
