// Package http adapts the tool surface to an HTTP transport. Every tool
// lives under POST /api/v1/tools/<tool_name>, takes a small JSON body and
// answers with the tool's plain-text line; the response status classifies
// the failure. The X-Session-ID header scopes cart state to one caller.
package http

import (
	"errors"
	"net/http"

	"kirana/internal/adapters/in/tools"
	"kirana/internal/core/domain/model/cart"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const (
	// sessionHeader carries the caller's session id.
	sessionHeader = "X-Session-ID"

	// defaultSession is used when the caller does not name a session.
	defaultSession = "default"
)

// Server exposes the ordering toolkit over HTTP.
type Server struct {
	toolkit tools.Toolkit
}

// NewServer creates an HTTP server over the given toolkit.
func NewServer(toolkit tools.Toolkit) *Server {
	return &Server{toolkit: toolkit}
}

// RegisterRoutes attaches the tool, health and metrics routes.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	toolRoutes := e.Group("/api/v1/tools")
	toolRoutes.POST("/find_item", s.FindItem)
	toolRoutes.POST("/add_to_cart", s.AddToCart)
	toolRoutes.POST("/remove_from_cart", s.RemoveFromCart)
	toolRoutes.POST("/update_cart_quantity", s.UpdateCartQuantity)
	toolRoutes.POST("/show_cart", s.ShowCart)
	toolRoutes.POST("/place_order", s.PlaceOrder)
	toolRoutes.POST("/cancel_order", s.CancelOrder)
	toolRoutes.POST("/get_order_status", s.GetOrderStatus)
	toolRoutes.POST("/order_history", s.OrderHistory)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

type findItemRequest struct {
	Query string `json:"query"`
}

// FindItem handles POST /api/v1/tools/find_item.
func (s *Server) FindItem(ctx echo.Context) error {
	var request findItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badBody(ctx)
	}

	return ctx.String(http.StatusOK, s.toolkit.FindItem(request.Query))
}

type addToCartRequest struct {
	ItemID   string `json:"item_id"`
	Quantity *int   `json:"quantity"`
	Notes    string `json:"notes"`
}

// AddToCart handles POST /api/v1/tools/add_to_cart. Quantity defaults to one
// when the body omits it.
func (s *Server) AddToCart(ctx echo.Context) error {
	var request addToCartRequest
	if err := ctx.Bind(&request); err != nil {
		return badBody(ctx)
	}

	quantity := 1
	if request.Quantity != nil {
		quantity = *request.Quantity
	}

	message, err := s.toolkit.AddToCart(session(ctx), request.ItemID, quantity, request.Notes)
	return respond(ctx, message, err)
}

type removeFromCartRequest struct {
	ItemID string `json:"item_id"`
}

// RemoveFromCart handles POST /api/v1/tools/remove_from_cart.
func (s *Server) RemoveFromCart(ctx echo.Context) error {
	var request removeFromCartRequest
	if err := ctx.Bind(&request); err != nil {
		return badBody(ctx)
	}

	message, err := s.toolkit.RemoveFromCart(session(ctx), request.ItemID)
	return respond(ctx, message, err)
}

type updateCartQuantityRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// UpdateCartQuantity handles POST /api/v1/tools/update_cart_quantity.
func (s *Server) UpdateCartQuantity(ctx echo.Context) error {
	var request updateCartQuantityRequest
	if err := ctx.Bind(&request); err != nil {
		return badBody(ctx)
	}

	message, err := s.toolkit.UpdateCartQuantity(session(ctx), request.ItemID, request.Quantity)
	return respond(ctx, message, err)
}

// ShowCart handles POST /api/v1/tools/show_cart.
func (s *Server) ShowCart(ctx echo.Context) error {
	message, err := s.toolkit.ShowCart(session(ctx))
	return respond(ctx, message, err)
}

type placeOrderRequest struct {
	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
}

// PlaceOrder handles POST /api/v1/tools/place_order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request placeOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badBody(ctx)
	}

	message, err := s.toolkit.PlaceOrder(
		ctx.Request().Context(), session(ctx), request.CustomerName, request.Address,
	)
	return respond(ctx, message, err)
}

type cancelOrderRequest struct {
	OrderID string `json:"order_id"`
}

// CancelOrder handles POST /api/v1/tools/cancel_order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var request cancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badBody(ctx)
	}

	message, err := s.toolkit.CancelOrder(ctx.Request().Context(), request.OrderID)
	return respond(ctx, message, err)
}

type getOrderStatusRequest struct {
	OrderID string `json:"order_id"`
}

// GetOrderStatus handles POST /api/v1/tools/get_order_status.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	var request getOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badBody(ctx)
	}

	message, err := s.toolkit.GetOrderStatus(ctx.Request().Context(), request.OrderID)
	return respond(ctx, message, err)
}

type orderHistoryRequest struct {
	CustomerName string `json:"customer_name"`
}

// OrderHistory handles POST /api/v1/tools/order_history.
func (s *Server) OrderHistory(ctx echo.Context) error {
	var request orderHistoryRequest
	if err := ctx.Bind(&request); err != nil {
		return badBody(ctx)
	}

	message, err := s.toolkit.OrderHistory(ctx.Request().Context(), request.CustomerName)
	return respond(ctx, message, err)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// session reads the caller's session id from the request header.
func session(ctx echo.Context) string {
	if id := ctx.Request().Header.Get(sessionHeader); id != "" {
		return id
	}

	return defaultSession
}

// respond writes the tool's line with a status derived from the error class.
// The line itself is already caller-safe: the toolkit replaces internal
// errors with a generic message before they get here.
func respond(ctx echo.Context, message string, err error) error {
	return ctx.String(statusOf(err), message)
}

// statusOf maps the error taxonomy onto HTTP statuses.
func statusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrOrderAlreadyDelivered),
		errors.Is(err, cart.ErrCartIsEmpty):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// badBody rejects a request whose body could not be parsed.
func badBody(ctx echo.Context) error {
	return ctx.String(http.StatusBadRequest, "The request body could not be read. Send a JSON object.")
}
