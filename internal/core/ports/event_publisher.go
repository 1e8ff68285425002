package ports

import (
	"context"

	"kirana/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order lifecycle events for downstream
// consumers (notifications, analytics). Publishing happens after the status
// change has been durably persisted and is best effort: a failed publish is
// logged by the caller, never rolled back into the order store.
type OrderEventPublisher interface {
	// PublishOrderStatusChanged emits an event describing an order's status
	// change. from is order.Unknown for a freshly placed order.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order, from order.Status) error
}
