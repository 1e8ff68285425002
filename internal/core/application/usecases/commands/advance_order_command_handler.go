package commands

import (
	"context"
	"log/slog"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"
	"kirana/internal/pkg/metrics"
)

// AdvanceOrderCommandHandler handles one advancement step of an order's
// lifecycle. The lifecycle supervisor invokes it once per tick for every
// in-flight order.
//
// Each step re-reads the stored status before doing anything, so a
// cancellation persisted since the last tick is observed here and stops the
// unit. The write itself is the repository's guarded compare-and-swap, which
// turns a lost race (the order was cancelled between the read and the write)
// into a no-op instead of overwriting a terminal status.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, publisher, orderMetrics, logger)
//	cmd, _ := NewAdvanceOrderCommand(orderID)
//
//	status, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // transient failure, retry on the next tick
//	}
//	if status.IsTerminal() {
//	    // delivered or cancelled, stop advancing
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	metrics    *metrics.OrderMetrics
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for lifecycle advancement steps.
// Requires an OrderUoWFactory for transactional persistence and an event
// publisher for status change announcements.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		metrics:    orderMetrics,
		logger:     logger,
	}
}

// Handle processes one advancement step and reports the order's stored status
// after it.
//
// Outcomes:
//   - the stored status is already terminal: no write happens and the
//     terminal status is returned, telling the caller to stop
//   - the order advanced: the new status is persisted and returned
//   - the guarded write was rejected: a racing writer (a cancellation, in
//     practice) moved the order first; the status that won is re-read and
//     returned
//   - an unknown order id returns errs.ObjectNotFoundError
//
// Any error leaves the stored state untouched; the caller may retry on its
// next tick.
func (h AdvanceOrderCommandHandler) Handle(
	ctx context.Context, command AdvanceOrderCommand,
) (order.Status, error) {
	if err := command.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	from := aggregate.Status()
	if from.IsTerminal() {
		return from, nil
	}

	if err = aggregate.Advance(); err != nil {
		return order.Unknown, err
	}

	changed, err := repo.UpdateStatus(ctx, command.OrderID(), aggregate.Status())
	if err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	if !changed {
		return currentStatus(ctx, h.uowFactory, command.OrderID())
	}

	to := aggregate.Status()
	if to == order.Delivered {
		h.metrics.Delivered.Inc()
	}
	h.metrics.Transitions.WithLabelValues(from.String(), to.String()).Inc()
	h.publishStatusChanged(ctx, aggregate, from)

	return to, nil
}

// publishStatusChanged announces the advancement. Publishing is best effort:
// the new status is already durable, so a failed publish is logged and dropped.
func (h AdvanceOrderCommandHandler) publishStatusChanged(
	ctx context.Context, aggregate *order.Order, from order.Status,
) {
	if err := h.publisher.PublishOrderStatusChanged(ctx, aggregate, from); err != nil {
		h.logger.WarnContext(ctx, "order advancement event publish failed",
			"order_id", aggregate.ID().String(),
			"error", err,
		)
	}
}
