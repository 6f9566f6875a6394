// Package http is the operator-facing driver: an echo server exposing the
// order workflow's entry points and read models.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gruberoo/internal/core/application/usecases/commands"
	"gruberoo/internal/core/application/usecases/queries"
	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the order workflow.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	processQueueHandler commands.ProcessQueueCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	modifyOrderHandler  commands.ModifyOrderCommandHandler
	bulkProcessHandler  commands.BulkProcessCommandHandler

	// Query handlers
	catalogHandler        queries.GetRestaurantCatalogQueryHandler
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler
	refundStackHandler    queries.GetRefundStackQueryHandler
	reconciliationHandler queries.GetReconciliationReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	processQueueHandler commands.ProcessQueueCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	modifyOrderHandler commands.ModifyOrderCommandHandler,
	bulkProcessHandler commands.BulkProcessCommandHandler,
	catalogHandler queries.GetRestaurantCatalogQueryHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	refundStackHandler queries.GetRefundStackQueryHandler,
	reconciliationHandler queries.GetReconciliationReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		processQueueHandler:   processQueueHandler,
		cancelOrderHandler:    cancelOrderHandler,
		modifyOrderHandler:    modifyOrderHandler,
		bulkProcessHandler:    bulkProcessHandler,
		catalogHandler:        catalogHandler,
		customerOrdersHandler: customerOrdersHandler,
		refundStackHandler:    refundStackHandler,
		reconciliationHandler: reconciliationHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.PATCH("/orders/:id", s.ModifyOrder)
	api.POST("/orders/bulk-process", s.BulkProcess)
	api.POST("/restaurants/:id/queue/process", s.ProcessQueue)
	api.GET("/restaurants", s.GetRestaurants)
	api.GET("/customers/:email/orders", s.GetCustomerOrders)
	api.GET("/refunds", s.GetRefundStack)
	api.GET("/reconciliation", s.GetReconciliationReport)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
//
//	@Summary		Place a new order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Order to place"
//	@Success		201		{object}	CreateOrderResponse
//	@Failure		400		{object}	Error
//	@Failure		404		{object}	Error
//	@Router			/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var offerID *uuid.UUID
	if req.OfferID != "" {
		parsed, err := uuid.Parse(req.OfferID)
		if err != nil {
			return badRequest(ctx, "Invalid offer id")
		}
		offerID = &parsed
	}

	items := make([]commands.ItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.ItemInput{Name: item.Name, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerEmail,
		req.RestaurantID,
		req.DeliveryAt,
		req.Address,
		req.PaymentMethod,
		req.SpecialRequest,
		offerID,
		items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID})
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel - cancels a pending order.
//
//	@Summary		Cancel a pending order
//	@Tags			orders
//	@Accept			json
//	@Param			id		path	int					true	"Order id"
//	@Param			request	body	CancelOrderRequest	true	"Requesting customer"
//	@Success		204
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		409	{object}	Error
//	@Router			/orders/{id}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(req.CustomerEmail, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ModifyOrder handles PATCH /api/v1/orders/{id} - modifies a pending order.
//
//	@Summary		Modify a pending order
//	@Tags			orders
//	@Accept			json
//	@Param			id		path	int					true	"Order id"
//	@Param			request	body	ModifyOrderRequest	true	"Requested change"
//	@Success		204
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		409	{object}	Error
//	@Router			/orders/{id} [patch]
func (s *Server) ModifyOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ModifyOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	action, ok := parseModifyAction(req.Action)
	if !ok {
		return badRequest(ctx, "Unknown action: "+req.Action)
	}

	cmd, err := commands.NewModifyOrderCommand(
		req.CustomerEmail,
		orderID,
		action,
		req.ItemName,
		req.Quantity,
		req.Address,
		req.DeliveryAt,
	)
	if err != nil {
		return badRequest(ctx, "Invalid modification data: "+err.Error())
	}

	if err = s.modifyOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessQueue handles POST /api/v1/restaurants/{id}/queue/process - runs one
// processing pass over a restaurant's queue, applying the submitted per-order
// actions.
//
//	@Summary		Process a restaurant's order queue
//	@Tags			restaurants
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Restaurant id"
//	@Param			request	body		ProcessQueueRequest	true	"Per-order actions"
//	@Success		200		{array}		OrderOutcomeResponse
//	@Failure		400		{object}	Error
//	@Failure		404		{object}	Error
//	@Router			/restaurants/{id}/queue/process [post]
func (s *Server) ProcessQueue(ctx echo.Context) error {
	restaurantID := ctx.Param("id")

	var req ProcessQueueRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dispositions := make(map[int64]commands.Disposition, len(req.Actions))
	for orderID, action := range req.Actions {
		disposition, ok := parseDisposition(action)
		if !ok {
			return badRequest(ctx, "Unknown action: "+action)
		}
		dispositions[orderID] = disposition
	}

	cmd, err := commands.NewProcessQueueCommand(restaurantID, func(o *order.Order) commands.Disposition {
		return dispositions[o.ID()]
	})
	if err != nil {
		return badRequest(ctx, "Invalid processing data: "+err.Error())
	}

	outcomes, err := s.processQueueHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOutcomeResponses(outcomes))
}

// BulkProcess handles POST /api/v1/orders/bulk-process - sweeps every
// restaurant queue, auto-triaging pending orders against the threshold.
//
//	@Summary		Auto-triage all pending orders
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BulkProcessRequest	false	"Threshold override"
//	@Success		200		{object}	BulkProcessResponse
//	@Failure		400		{object}	Error
//	@Router			/orders/bulk-process [post]
func (s *Server) BulkProcess(ctx echo.Context) error {
	var req BulkProcessRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	threshold := commands.DefaultTriageThreshold
	if req.ThresholdMinutes > 0 {
		threshold = time.Duration(req.ThresholdMinutes) * time.Minute
	}

	cmd, err := commands.NewBulkProcessCommand(threshold)
	if err != nil {
		return badRequest(ctx, "Invalid threshold: "+err.Error())
	}

	result, err := s.bulkProcessHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BulkProcessResponse{
		Inspected:        result.Inspected,
		MovedToPreparing: result.MovedToPreparing,
		Rejected:         result.Rejected,
		InspectedPercent: result.InspectedPercent,
	})
}

// GetRestaurants handles GET /api/v1/restaurants - returns the catalog.
//
//	@Summary		List the restaurant catalog
//	@Tags			restaurants
//	@Produce		json
//	@Success		200	{array}		RestaurantResponse
//	@Failure		503	{object}	Error
//	@Router			/restaurants [get]
func (s *Server) GetRestaurants(ctx echo.Context) error {
	query := queries.NewGetRestaurantCatalogQuery()

	catalog, err := s.catalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCatalogResponses(catalog))
}

// GetCustomerOrders handles GET /api/v1/customers/{email}/orders - returns
// one customer's order ledger.
//
//	@Summary		List a customer's orders
//	@Tags			customers
//	@Produce		json
//	@Param			email	path		string	true	"Customer email"
//	@Success		200		{array}		CustomerOrderResponse
//	@Failure		400		{object}	Error
//	@Router			/customers/{email}/orders [get]
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(ctx.Param("email"))
	if err != nil {
		return badRequest(ctx, "Invalid customer email")
	}

	orders, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerOrderResponses(orders))
}

// GetRefundStack handles GET /api/v1/refunds - exports the refund ledger,
// most recent entry first.
//
//	@Summary		Export the refund ledger
//	@Tags			refunds
//	@Produce		json
//	@Success		200	{array}		RefundEntryResponse
//	@Failure		503	{object}	Error
//	@Router			/refunds [get]
func (s *Server) GetRefundStack(ctx echo.Context) error {
	entries, err := s.refundStackHandler.Handle(ctx.Request().Context(), queries.NewGetRefundStackQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]RefundEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = RefundEntryResponse{OrderID: entry.OrderID, PushedAt: entry.PushedAt}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReconciliationReport handles GET /api/v1/reconciliation - returns the
// revenue vs refunds report.
//
//	@Summary		Revenue vs refunds report
//	@Tags			reconciliation
//	@Produce		json
//	@Success		200	{object}	ReconciliationResponse
//	@Failure		503	{object}	Error
//	@Router			/reconciliation [get]
func (s *Server) GetReconciliationReport(ctx echo.Context) error {
	report, err := s.reconciliationHandler.Handle(ctx.Request().Context(), queries.NewGetReconciliationReportQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReconciliationResponse(report))
}

func parseDisposition(action string) (commands.Disposition, bool) {
	switch action {
	case "confirm":
		return commands.DispositionConfirm, true
	case "reject":
		return commands.DispositionReject, true
	case "deliver":
		return commands.DispositionDeliver, true
	case "skip":
		return commands.DispositionSkip, true
	default:
		return commands.DispositionSkip, false
	}
}

func parseModifyAction(action string) (commands.ModifyAction, bool) {
	switch action {
	case "addItem":
		return commands.ModifyAddItem, true
	case "removeItem":
		return commands.ModifyRemoveItem, true
	case "changeQuantity":
		return commands.ModifyChangeQuantity, true
	case "changeAddress":
		return commands.ModifyChangeAddress, true
	case "changeDeliveryTime":
		return commands.ModifyChangeDeliveryTime, true
	default:
		return 0, false
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// domainError maps the error taxonomy onto HTTP statuses: unknown object to
// 404, disallowed transition to 409, invalid input to 400, anything else
// (storage unavailable included) to 503.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	default:
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Storage unavailable",
		})
	}
}
