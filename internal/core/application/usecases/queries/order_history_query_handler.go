package queries

import (
	"context"
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderHistoryQueryHandler retrieves recent orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewOrderHistoryQueryHandler(db)
//	query, _ := NewOrderHistoryQuery(5, "")
//
//	recent, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order history: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d recent orders\n", len(recent))
type OrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewOrderHistoryQueryHandler(db *gorm.DB) OrderHistoryQueryHandler {
	return OrderHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve recent orders.
// Returns up to the query's limit, newest first (placement time, order id as
// tiebreak). A customer filter matches case-insensitively.
func (h OrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query OrderHistoryQuery,
) ([]OrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderHistoryQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			status,
			total,
			created_at
		FROM orders
		WHERE (? = '' OR LOWER(customer_name) = LOWER(?))
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, query.CustomerName(), query.CustomerName(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp OrderHistoryQueryResponse
		var id, status string
		var total decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderResp.CustomerName,
			&status,
			&total,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.OrderIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		orderResp.OrderID = orderID

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		orderResp.Status = orderStatus

		orderTotal, totalErr := kernel.NewPrice(total)
		if totalErr != nil {
			return nil, totalErr
		}
		orderResp.Total = orderTotal
		orderResp.CreatedAt = createdAt

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
