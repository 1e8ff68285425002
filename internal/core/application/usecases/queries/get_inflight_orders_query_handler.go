package queries

import (
	"context"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetInFlightOrdersQueryHandler retrieves orders pending fulfilment from the
// database. Filters out terminal orders so the resume sweep only tracks work
// that can still advance.
//
// Example:
//
//	handler := NewGetInFlightOrdersQueryHandler(db)
//	query := NewGetInFlightOrdersQuery()
//
//	inFlight, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get in-flight orders: %v", err)
//	    return err
//	}
//
//	if len(inFlight) > 0 {
//	    fmt.Printf("%d orders still advancing\n", len(inFlight))
//	}
type GetInFlightOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetInFlightOrdersQueryHandler creates a handler for in-flight order queries.
// Requires a GORM database connection for query execution.
func NewGetInFlightOrdersQueryHandler(db *gorm.DB) GetInFlightOrdersQueryHandler {
	return GetInFlightOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all in-flight orders.
// Returns orders in any non-terminal status, oldest placement first so
// long-waiting orders are tracked before fresh ones.
func (h GetInFlightOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetInFlightOrdersQuery,
) ([]GetInFlightOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	inFlight := make([]string, 0, len(order.NonTerminalStatuses()))
	for _, status := range order.NonTerminalStatuses() {
		inFlight = append(inFlight, status.String())
	}

	orders := make([]GetInFlightOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status
		FROM orders
		WHERE status IN ?
		ORDER BY created_at, id
	`, inFlight).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetInFlightOrdersQueryResponse
		var id, status string

		err = rows.Scan(
			&id,
			&status,
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
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
