package commands

import (
	"context"
	"log/slog"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/domain/services"
	"kirana/internal/core/ports"
	"kirana/internal/pkg/metrics"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Snapshots the session cart into a new order in "received" status, persists
// it and announces the placement to downstream consumers.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, checkout, publisher, orderMetrics, logger)
//	orderID := kernel.NewOrderID()
//	cmd, _ := NewPlaceOrderCommand(orderID, sessionCart, "Asha", "12 MG Road, Pune")
//
//	total, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now persisted with its total frozen and ready for
//	// lifecycle advancement
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	checkout   services.CheckoutService
	publisher  ports.OrderEventPublisher
	metrics    *metrics.OrderMetrics
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence, the checkout
// domain service and an event publisher for placement announcements.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	checkout services.CheckoutService,
	publisher ports.OrderEventPublisher,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		checkout:   checkout,
		publisher:  publisher,
		metrics:    orderMetrics,
		logger:     logger,
	}
}

// Handle processes the order placement command and returns the total frozen
// into the new order.
// Builds the order from the cart via the checkout service and persists it
// within a transaction. Returns cart.ErrCartIsEmpty when the cart holds no
// lines. The cart itself is never mutated; the caller clears it once this
// returns nil.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (kernel.Price, error) {
	if err := command.Validate(); err != nil {
		return kernel.Price{}, err
	}

	aggregate, err := h.checkout.Checkout(
		command.OrderID(), command.Cart(), command.CustomerName(), command.Address(),
	)
	if err != nil {
		return kernel.Price{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.Price{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.Price{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Price{}, err
	}

	h.metrics.Placed.Inc()
	h.publishStatusChanged(ctx, aggregate)

	return aggregate.Total(), nil
}

// publishStatusChanged announces the placement. Publishing is best effort:
// the order is already durable, so a failed publish is logged and dropped.
func (h PlaceOrderCommandHandler) publishStatusChanged(ctx context.Context, aggregate *order.Order) {
	if err := h.publisher.PublishOrderStatusChanged(ctx, aggregate, order.Unknown); err != nil {
		h.logger.WarnContext(ctx, "order placement event publish failed",
			"order_id", aggregate.ID().String(),
			"error", err,
		)
	}
}
