package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler answers status lookups straight from the orders
// table. Uses direct SQL for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderStatusQueryHandler(db)
//	query, _ := NewGetOrderStatusQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Order %s is %s\n", resp.OrderID, resp.Status)
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the status lookup.
// Returns errs.ObjectNotFoundError when no order with the given id exists.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	var id, status string
	var updatedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	if err := row.Scan(&id, &status, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderStatusQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderStatusQueryResponse{}, err
	}

	orderID, err := kernel.OrderIDFromString(id)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return GetOrderStatusQueryResponse{
		OrderID:   orderID,
		Status:    orderStatus,
		UpdatedAt: updatedAt,
	}, nil
}
