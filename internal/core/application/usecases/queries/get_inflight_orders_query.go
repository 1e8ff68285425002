// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/guard"
)

var (
	ErrGetInFlightOrdersQueryIsNotConstructed = errors.New(
		"GetInFlightOrdersQuery must be created via NewGetInFlightOrdersQuery constructor",
	)
)

// GetInFlightOrdersQuery retrieves all orders still moving through fulfilment.
// Returns orders in any non-terminal status so the resume sweep can put an
// advancement unit back on each of them after a restart.
//
// Example:
//
//	query := NewGetInFlightOrdersQuery()
//	handler := NewGetInFlightOrdersQueryHandler(db)
//
//	inFlight, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve in-flight orders: %w", err)
//	}
//
//	for _, o := range inFlight {
//	    supervisor.Track(o.OrderID)
//	}
type GetInFlightOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInFlightOrdersQuery creates a query to retrieve in-flight orders.
// This is a parameterless query that fetches every non-terminal order.
func NewGetInFlightOrdersQuery() GetInFlightOrdersQuery {
	return GetInFlightOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInFlightOrdersQueryIsNotConstructed if validation fails.
func (q GetInFlightOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetInFlightOrdersQueryIsNotConstructed)
}

// GetInFlightOrdersQueryResponse represents one in-flight order in the read
// model. Carries just enough for the resume sweep: the identity to track and
// the status it was found in.
type GetInFlightOrdersQueryResponse struct {
	OrderID kernel.OrderID
	Status  order.Status
}
