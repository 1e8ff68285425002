package commands

import (
	"errors"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an order one step along
// the fulfilment path. Issued by lifecycle units on every tick.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance the given order.
// Validates that the order id is constructed.
func NewAdvanceOrderCommand(orderID kernel.OrderID) (AdvanceOrderCommand, error) {
	advanceCommand := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := advanceCommand.setOrderID(orderID); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
