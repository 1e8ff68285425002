package queries

import (
	"errors"
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
)

// GetOrderStatusQuery retrieves the current lifecycle status of one order.
// The order may have moved since the caller last saw it, so the answer always
// comes from the stored row, never from in-memory state.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("No such order")
//	}
type GetOrderStatusQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a status query for the given order.
//
// Parameters:
//   - orderID: Identifier of the order to look up (must be valid)
//
// Returns:
//   - GetOrderStatusQuery: Properly initialized query
//   - error: Validation error if the order id is invalid
func NewGetOrderStatusQuery(orderID kernel.OrderID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order being looked up.
func (q GetOrderStatusQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// GetOrderStatusQueryResponse represents one order's lifecycle position in
// the read model.
type GetOrderStatusQueryResponse struct {
	OrderID   kernel.OrderID
	Status    order.Status
	UpdatedAt time.Time
}
