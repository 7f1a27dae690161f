// Package http is the inbound HTTP adapter. Handlers translate wire requests
// into commands and queries and render results through the response envelope;
// all failure mapping happens in the error handler middleware.
package http

import (
	"context"
	"net/http"
	"strconv"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/validation"

	"github.com/labstack/echo/v4"
)

type createOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type updateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error
}

type deleteOrderHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
}

type getOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
}

type listOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler createOrderHandler
	updateOrderHandler updateOrderHandler
	deleteOrderHandler deleteOrderHandler
	getOrderHandler    getOrderHandler
	listOrdersHandler  listOrdersHandler
	tokenVerifier      TokenVerifier
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler createOrderHandler,
	updateOrderHandler updateOrderHandler,
	deleteOrderHandler deleteOrderHandler,
	getOrderHandler getOrderHandler,
	listOrdersHandler listOrdersHandler,
	tokenVerifier TokenVerifier,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
		tokenVerifier:      tokenVerifier,
	}
}

// RegisterRoutes mounts all routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	auth := api.Group("/auth", BearerAuth(s.tokenVerifier))
	auth.GET("/me", s.AuthMe)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return success(ctx, http.StatusOK, toOrderPayload(result))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	filter, err := parseOrderFilter(ctx)
	if err != nil {
		return err
	}
	if err = validation.Apply(filter.rules()...); err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(
		filter.Search, filter.Status, filter.FromDate, filter.ToDate,
		filter.PageNumber, filter.PageSize,
	)
	if err != nil {
		return err
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	data := make([]OrderPayload, 0, len(result.Orders))
	for _, o := range result.Orders {
		data = append(data, toOrderPayload(o))
	}

	return success(ctx, http.StatusOK, OrderListPayload{
		Data:         data,
		TotalRecords: result.TotalRecords,
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errs.NewValidationError("Body", "Invalid request body")
	}
	if err := validation.Apply(request.rules()...); err != nil {
		return err
	}

	// A token that fails parsing yields Unknown, which the command rejects
	// with its own status message.
	status, _ := order.ParseStatus(request.Status)
	cmd, err := commands.NewCreateOrderCommand(request.Name, request.Quantity, request.Price, status)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return success(ctx, http.StatusCreated, aggregateToPayload(created))
}

// UpdateOrder handles PUT /api/v1/orders.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	var request UpdateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errs.NewValidationError("Body", "Invalid request body")
	}
	if err := validation.Apply(request.rules()...); err != nil {
		return err
	}

	status, _ := order.ParseStatus(request.Status)
	cmd, err := commands.NewUpdateOrderCommand(request.ID, request.Name, request.Quantity, request.Price, status)
	if err != nil {
		return err
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AuthMe handles GET /api/v1/auth/me. Guarded by BearerAuth.
func (s *Server) AuthMe(ctx echo.Context) error {
	subject, _ := ctx.Get(subjectContextKey).(string)
	return success(ctx, http.StatusOK, CurrentUserPayload{Name: subject})
}

func orderID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errs.NewValidationError("Id", "Id is required.")
	}
	return id, nil
}
