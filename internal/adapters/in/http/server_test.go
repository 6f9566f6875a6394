package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "gruberoo/internal/adapters/in/http"
	"gruberoo/internal/adapters/out/inmem"
	"gruberoo/internal/core/application/usecases/commands"
	"gruberoo/internal/core/application/usecases/queries"
	"gruberoo/internal/core/domain/model/customer"
	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placementFactory struct{ store *inmem.Store }

func (f placementFactory) Create() commands.PlacementUoW { return inmem.NewUnitOfWork(f.store) }

type triageFactory struct{ store *inmem.Store }

func (f triageFactory) Create() commands.TriageUoW { return inmem.NewUnitOfWork(f.store) }

// newTestServer wires a server over an in-memory store seeded with one
// restaurant ("r-1") and one customer (alice@example.com).
func newTestServer(t *testing.T) (*echo.Echo, *inmem.Store) {
	t.Helper()
	ctx := context.Background()
	store := inmem.NewStore()

	menu, err := restaurant.NewMenu("m-1", "Dinner")
	require.NoError(t, err)

	carbonara, err := restaurant.NewFoodItem("Carbonara", "Classic pasta", kernel.NewMoneyFromCents(1250))
	require.NoError(t, err)
	require.NoError(t, menu.AddFoodItem(carbonara))

	rest, err := restaurant.NewRestaurant("r-1", "Trattoria", "trattoria@example.com")
	require.NoError(t, err)
	require.NoError(t, rest.AddMenu(menu))
	require.NoError(t, inmem.NewRestaurantRepository(store).Add(ctx, rest))

	alice, err := customer.NewCustomer("Alice", "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, inmem.NewCustomerRepository(store).Add(ctx, alice))

	refundStackHandler, err := queries.NewGetRefundStackQueryHandler(inmem.NewRefundRepository(store))
	require.NoError(t, err)

	reconciliationHandler, err := queries.NewGetReconciliationReportQueryHandler(inmem.NewOrderRepository(store))
	require.NoError(t, err)

	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(placementFactory{store}),
		commands.NewProcessQueueCommandHandler(triageFactory{store}),
		commands.NewCancelOrderCommandHandler(triageFactory{store}),
		commands.NewModifyOrderCommandHandler(placementFactory{store}),
		commands.NewBulkProcessCommandHandler(triageFactory{store}),
		queries.GetRestaurantCatalogQueryHandler{},
		queries.GetCustomerOrdersQueryHandler{},
		refundStackHandler,
		reconciliationHandler,
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e, store
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func placeOrderRequest(t *testing.T, e *echo.Echo) int64 {
	t.Helper()

	rec := doRequest(e, http.MethodPost, "/api/v1/orders", `{
		"customerEmail": "alice@example.com",
		"restaurantId": "r-1",
		"deliveryAt": "2026-08-01T18:30:00Z",
		"address": "1 Main Street",
		"paymentMethod": "CC",
		"items": [{"name": "Carbonara", "quantity": 2}]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		OrderID int64 `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.OrderID
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should place an order and return its id", func(t *testing.T) {
		e, _ := newTestServer(t)

		orderID := placeOrderRequest(t, e)

		assert.Equal(t, int64(1001), orderID)
	})

	t.Run("should return 404 for unknown restaurant", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodPost, "/api/v1/orders", `{
			"customerEmail": "alice@example.com",
			"restaurantId": "r-9",
			"deliveryAt": "2026-08-01T18:30:00Z",
			"address": "1 Main Street",
			"paymentMethod": "CC",
			"items": [{"name": "Carbonara", "quantity": 1}]
		}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 400 for invalid payload", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodPost, "/api/v1/orders", `{
			"customerEmail": "not-an-email",
			"restaurantId": "r-1"
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 400 for unknown menu item", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodPost, "/api/v1/orders", `{
			"customerEmail": "alice@example.com",
			"restaurantId": "r-1",
			"deliveryAt": "2026-08-01T18:30:00Z",
			"address": "1 Main Street",
			"paymentMethod": "CC",
			"items": [{"name": "Ghost Pasta", "quantity": 1}]
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_CancelOrder(t *testing.T) {
	t.Run("should cancel a pending order", func(t *testing.T) {
		e, _ := newTestServer(t)
		placeOrderRequest(t, e)

		rec := doRequest(e, http.MethodPost, "/api/v1/orders/1001/cancel",
			`{"customerEmail": "alice@example.com"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)

		refunds := doRequest(e, http.MethodGet, "/api/v1/refunds", "")
		assert.Equal(t, http.StatusOK, refunds.Code)
		assert.Contains(t, refunds.Body.String(), `"orderId":1001`)
	})

	t.Run("should return 404 when the order belongs to someone else", func(t *testing.T) {
		e, _ := newTestServer(t)
		placeOrderRequest(t, e)

		rec := doRequest(e, http.MethodPost, "/api/v1/orders/1001/cancel",
			`{"customerEmail": "mallory@example.com"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 409 once the order is preparing", func(t *testing.T) {
		e, _ := newTestServer(t)
		placeOrderRequest(t, e)

		process := doRequest(e, http.MethodPost, "/api/v1/restaurants/r-1/queue/process",
			`{"actions": {"1001": "confirm"}}`)
		require.Equal(t, http.StatusOK, process.Code)

		rec := doRequest(e, http.MethodPost, "/api/v1/orders/1001/cancel",
			`{"customerEmail": "alice@example.com"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestServer_ModifyOrder(t *testing.T) {
	t.Run("should change the delivery address", func(t *testing.T) {
		e, _ := newTestServer(t)
		placeOrderRequest(t, e)

		rec := doRequest(e, http.MethodPatch, "/api/v1/orders/1001", `{
			"customerEmail": "alice@example.com",
			"action": "changeAddress",
			"address": "2 Side Street"
		}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should return 400 for an unknown action", func(t *testing.T) {
		e, _ := newTestServer(t)
		placeOrderRequest(t, e)

		rec := doRequest(e, http.MethodPatch, "/api/v1/orders/1001", `{
			"customerEmail": "alice@example.com",
			"action": "teleport"
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_ProcessQueue(t *testing.T) {
	t.Run("should apply per-order actions and report outcomes", func(t *testing.T) {
		e, _ := newTestServer(t)
		placeOrderRequest(t, e)
		placeOrderRequest(t, e)

		rec := doRequest(e, http.MethodPost, "/api/v1/restaurants/r-1/queue/process",
			`{"actions": {"1001": "confirm", "1002": "reject"}}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var outcomes []struct {
			OrderID  int64  `json:"orderId"`
			Status   string `json:"status"`
			Requeued bool   `json:"requeued"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcomes))
		require.Len(t, outcomes, 2)

		assert.Equal(t, "Preparing", outcomes[0].Status)
		assert.True(t, outcomes[0].Requeued)
		assert.Equal(t, "Rejected", outcomes[1].Status)
		assert.False(t, outcomes[1].Requeued)
	})

	t.Run("should return 404 for unknown restaurant", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodPost, "/api/v1/restaurants/r-9/queue/process",
			`{"actions": {}}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 400 for an unknown action", func(t *testing.T) {
		e, _ := newTestServer(t)
		placeOrderRequest(t, e)

		rec := doRequest(e, http.MethodPost, "/api/v1/restaurants/r-1/queue/process",
			`{"actions": {"1001": "vaporize"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_BulkProcess(t *testing.T) {
	t.Run("should triage pending orders against the threshold", func(t *testing.T) {
		e, store := newTestServer(t)

		deliveryAt := time.Now().Add(30 * time.Minute).UTC().Format(time.RFC3339)
		rec := doRequest(e, http.MethodPost, "/api/v1/orders", `{
			"customerEmail": "alice@example.com",
			"restaurantId": "r-1",
			"deliveryAt": "`+deliveryAt+`",
			"address": "1 Main Street",
			"paymentMethod": "CC",
			"items": [{"name": "Carbonara", "quantity": 1}]
		}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		sweep := doRequest(e, http.MethodPost, "/api/v1/orders/bulk-process", "")
		require.Equal(t, http.StatusOK, sweep.Code)

		var resp struct {
			Inspected int `json:"inspected"`
			Rejected  int `json:"rejected"`
		}
		require.NoError(t, json.Unmarshal(sweep.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Inspected)
		assert.Equal(t, 1, resp.Rejected)

		rest, err := inmem.NewRestaurantRepository(store).Get(context.Background(), "r-1")
		require.NoError(t, err)
		assert.Zero(t, rest.QueueLen())
	})

	t.Run("should reject a non-positive threshold", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doRequest(e, http.MethodPost, "/api/v1/orders/bulk-process",
			`{"thresholdMinutes": -5}`)

		// Negative override falls back to the default threshold.
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_Reconciliation(t *testing.T) {
	t.Run("should report refunds after a rejection", func(t *testing.T) {
		e, _ := newTestServer(t)
		placeOrderRequest(t, e)

		process := doRequest(e, http.MethodPost, "/api/v1/restaurants/r-1/queue/process",
			`{"actions": {"1001": "reject"}}`)
		require.Equal(t, http.StatusOK, process.Code)

		rec := doRequest(e, http.MethodGet, "/api/v1/reconciliation", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			TotalRefunds string `json:"totalRefunds"`
			Final        string `json:"final"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		// 2 x 12.50 + 5.00 delivery fee
		assert.Equal(t, "30.00", resp.TotalRefunds)
		assert.Equal(t, "-30.00", resp.Final)
	})
}
