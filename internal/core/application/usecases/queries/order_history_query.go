package queries

import (
	"errors"
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

// MaxHistoryLimit bounds how many orders one history query may return.
const MaxHistoryLimit = 50

var (
	ErrOrderHistoryQueryIsNotConstructed = errors.New(
		"OrderHistoryQuery must be created via NewOrderHistoryQuery constructor",
	)
)

// OrderHistoryQuery retrieves recently placed orders, newest first. An
// optional customer name narrows the list to orders placed under that name.
//
// Example:
//
//	query, err := NewOrderHistoryQuery(5, "Asha")
//	if err != nil {
//	    return err
//	}
//
//	recent, err := handler.Handle(ctx, query)
//	for _, o := range recent {
//	    fmt.Printf("%s | %s | %s\n", o.OrderID, o.Status, o.Total)
//	}
type OrderHistoryQuery struct {
	limit        int
	customerName string

	guard guard.ConstructorGuard
}

// NewOrderHistoryQuery creates a history query.
//
// Parameters:
//   - limit: Maximum number of orders to return (1 to 50)
//   - customerName: Optional filter; empty string means all customers
//
// Returns:
//   - OrderHistoryQuery: Properly initialized query
//   - error: Validation error if the limit is out of range
func NewOrderHistoryQuery(limit int, customerName string) (OrderHistoryQuery, error) {
	if limit < 1 || limit > MaxHistoryLimit {
		return OrderHistoryQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxHistoryLimit)
	}

	return OrderHistoryQuery{
		limit:        limit,
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Limit returns the maximum number of orders the query may return.
func (q OrderHistoryQuery) Limit() int {
	return q.limit
}

// CustomerName returns the customer filter, empty when the query spans all
// customers.
func (q OrderHistoryQuery) CustomerName() string {
	return q.customerName
}

// Validate ensures the query was created through the constructor.
// Returns ErrOrderHistoryQueryIsNotConstructed if validation fails.
func (q OrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrOrderHistoryQueryIsNotConstructed)
}

// OrderHistoryQueryResponse represents one order in the history read model.
// Contains the fields the order views display: identity, who placed it, where
// it stands, what it cost and when it was placed.
type OrderHistoryQueryResponse struct {
	OrderID      kernel.OrderID
	CustomerName string
	Status       order.Status
	Total        kernel.Price
	CreatedAt    time.Time
}
