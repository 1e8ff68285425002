// Package ports defines repository and messaging interfaces for the ordering
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate together with its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// UpdateStatus moves an order to the next status with a guarded
	// compare-and-swap: the write only applies while the stored status is a
	// legal predecessor of next (for Cancelled, any non-terminal status;
	// otherwise the unique predecessor on the fulfilment path).
	//
	// Returns changed=false with a nil error when the order exists but the
	// guard rejected the write; a concurrent cancellation or advancement won
	// the race and the stored state is already newer. Returns
	// errs.ObjectNotFoundError when the order does not exist.
	UpdateStatus(ctx context.Context, id kernel.OrderID, next order.Status) (bool, error)

	// ListRecent retrieves up to limit orders, newest first (creation time,
	// then id as tiebreak). A non-empty customerName filters
	// case-insensitively on the name the order was placed under.
	ListRecent(ctx context.Context, limit int, customerName string) ([]*order.Order, error)
}
