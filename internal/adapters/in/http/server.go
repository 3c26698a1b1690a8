// Package http exposes the marketplace operations over a JSON REST API.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	onboardCustomerHandler commands.OnboardCustomerCommandHandler
	onboardDriverHandler   commands.OnboardDriverCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	pickupOrderHandler     commands.PickupOrderCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	payOrderHandler        commands.PayOrderCommandHandler
	rateDriverHandler      commands.RateDriverCommandHandler

	// Query handlers
	getTopDriversHandler        queries.GetTopDriversQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	onboardCustomerHandler commands.OnboardCustomerCommandHandler,
	onboardDriverHandler commands.OnboardDriverCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	pickupOrderHandler commands.PickupOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	rateDriverHandler commands.RateDriverCommandHandler,
	getTopDriversHandler queries.GetTopDriversQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
) *Server {
	return &Server{
		onboardCustomerHandler:      onboardCustomerHandler,
		onboardDriverHandler:        onboardDriverHandler,
		createOrderHandler:          createOrderHandler,
		pickupOrderHandler:          pickupOrderHandler,
		completeOrderHandler:        completeOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		payOrderHandler:             payOrderHandler,
		rateDriverHandler:           rateDriverHandler,
		getTopDriversHandler:        getTopDriversHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
	}
}

// RegisterRoutes mounts all marketplace endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/customers", s.OnboardCustomer)
	api.POST("/drivers", s.OnboardDriver)
	api.POST("/drivers/:id/rating", s.RateDriver)
	api.GET("/drivers/top", s.GetTopDrivers)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/pickup", s.PickupOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/payment", s.PayOrder)
	api.GET("/orders/active", s.GetActiveOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// OnboardCustomer handles POST /api/v1/customers.
func (s *Server) OnboardCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewOnboardCustomerCommand(body.ID, body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if err := s.onboardCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// OnboardDriver handles POST /api/v1/drivers.
func (s *Server) OnboardDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewOnboardDriverCommand(body.ID, body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if err := s.onboardDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	item, err := order.ItemTypeFromString(body.Item)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(body.ID, body.CustomerID, item, body.Quantity, body.Weight)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// PickupOrder handles POST /api/v1/orders/:id/pickup.
func (s *Server) PickupOrder(ctx echo.Context) error {
	var body DriverAction
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPickupOrderCommand(ctx.Param("id"), body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid pickup data: "+err.Error())
	}

	if err := s.pickupOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	var body DriverAction
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteOrderCommand(ctx.Param("id"), body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PayOrder handles POST /api/v1/orders/:id/payment.
func (s *Server) PayOrder(ctx echo.Context) error {
	var body Payment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid payment amount")
	}

	mode, err := payment.ModeFromString(body.Mode)
	if err != nil {
		return badRequest(ctx, "Invalid payment mode: "+err.Error())
	}

	cmd, err := commands.NewPayOrderCommand(ctx.Param("id"), amount, mode)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RateDriver handles POST /api/v1/drivers/:id/rating.
func (s *Server) RateDriver(ctx echo.Context) error {
	var body Rating
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateDriverCommand(ctx.Param("id"), body.Score)
	if err != nil {
		return badRequest(ctx, "Invalid rating data: "+err.Error())
	}

	if err := s.rateDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetTopDrivers handles GET /api/v1/drivers/top.
// Accepts optional "limit" and "by" query parameters; "by" is "rating"
// (default) or "orders".
func (s *Server) GetTopDrivers(ctx echo.Context) error {
	limit := queries.DefaultTopDriversLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := parsePositiveInt(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	sortBy := queries.SortByRating
	if raw := ctx.QueryParam("by"); raw != "" {
		parsed, err := queries.TopDriversSortByFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid sort criterion")
		}
		sortBy = parsed
	}

	query, err := queries.NewGetTopDriversQuery(limit, sortBy)
	if err != nil {
		return badRequest(ctx, "Invalid leaderboard query: "+err.Error())
	}

	top, err := s.getTopDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve top drivers")
	}

	response := make([]TopDriver, len(top))
	for i, d := range top {
		response[i] = TopDriver{
			ID:         d.ID,
			Name:       d.Name,
			Status:     d.Status,
			Rating:     d.Rating,
			OrderCount: d.OrderCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	active, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]ActiveOrder, len(active))
	for i, o := range active {
		response[i] = ActiveOrder{
			ID:         o.ID,
			CustomerID: o.CustomerID,
			Item:       o.Item,
			Quantity:   o.Quantity,
			Weight:     o.Weight,
			Status:     o.Status,
			DriverID:   o.DriverID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainError maps use case failures onto HTTP status codes: unknown objects
// are 404, lifecycle and uniqueness conflicts are 409, validation failures
// are 400 and everything else is 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, order.ErrInvalidState),
		errors.Is(err, order.ErrNotCancellable),
		errors.Is(err, order.ErrDriverNotAssigned),
		errors.Is(err, driver.ErrDriverIsNotAvailable):
		return writeError(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, err)
	default:
		return internalError(ctx, "Internal server error")
	}
}

func writeError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}

func parsePositiveInt(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, errs.NewValueIsInvalidError("limit")
	}
	return value, nil
}
