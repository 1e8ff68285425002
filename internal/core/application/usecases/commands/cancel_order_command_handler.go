package commands

import (
	"context"
	"log/slog"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"
	"kirana/internal/pkg/metrics"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Cancellation races against background advancement, so the final word is the
// repository's guarded status write, not the in-memory aggregate.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, publisher, orderMetrics, logger)
//	cmd, _ := NewCancelOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderAlreadyDelivered):
//	    log.Println("Too late, the order was delivered")
//	case err != nil:
//	    log.Printf("Cancellation failed: %v", err)
//	default:
//	    log.Println("Order cancelled")
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	metrics    *metrics.OrderMetrics
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
// Requires an OrderUoWFactory for transactional persistence and an event
// publisher for cancellation announcements.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		metrics:    orderMetrics,
		logger:     logger,
	}
}

// Handle processes the order cancellation command.
//
// Outcomes follow the order's lifecycle rules:
//   - a non-terminal order is cancelled and the change persisted
//   - an already cancelled order is a no-op success
//   - a delivered order returns order.ErrOrderAlreadyDelivered
//   - an unknown order id returns errs.ObjectNotFoundError
//
// When the guarded write is rejected, a racing writer moved the order to a
// terminal status between the read and the write; the stored status decides
// the outcome.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	if err = aggregate.Cancel(); err != nil {
		return err
	}
	if from == order.Cancelled {
		return nil
	}

	changed, err := repo.UpdateStatus(ctx, command.OrderID(), order.Cancelled)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !changed {
		return h.resolveRejectedCancel(ctx, command)
	}

	h.metrics.Cancelled.Inc()
	h.metrics.Transitions.WithLabelValues(from.String(), order.Cancelled.String()).Inc()
	h.publishStatusChanged(ctx, aggregate, from)

	return nil
}

// resolveRejectedCancel maps a lost cancellation race onto the caller-facing
// outcome. The guard admits every non-terminal status, so a rejected write
// means the stored status is already terminal: delivered is an error,
// cancelled is the outcome the caller asked for.
func (h CancelOrderCommandHandler) resolveRejectedCancel(ctx context.Context, command CancelOrderCommand) error {
	status, err := currentStatus(ctx, h.uowFactory, command.OrderID())
	if err != nil {
		return err
	}

	if status == order.Delivered {
		return order.ErrOrderAlreadyDelivered
	}

	return nil
}

// publishStatusChanged announces the cancellation. Publishing is best effort:
// the cancellation is already durable, so a failed publish is logged and dropped.
func (h CancelOrderCommandHandler) publishStatusChanged(
	ctx context.Context, aggregate *order.Order, from order.Status,
) {
	if err := h.publisher.PublishOrderStatusChanged(ctx, aggregate, from); err != nil {
		h.logger.WarnContext(ctx, "order cancellation event publish failed",
			"order_id", aggregate.ID().String(),
			"error", err,
		)
	}
}
