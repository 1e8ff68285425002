package commands

import (
	"errors"
	"fmt"

	"kirana/internal/core/domain/model/cart"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

// Each required-value sentinel unwraps to errs.ErrValueIsRequired, so
// adapters can classify a construction failure without naming every field.
var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCartIsRequired            = fmt.Errorf("cart: %w", errs.ErrValueIsRequired)
	ErrCustomerNameIsRequired    = fmt.Errorf("customer name: %w", errs.ErrValueIsRequired)
	ErrDeliveryAddressIsRequired = fmt.Errorf("delivery address: %w", errs.ErrValueIsRequired)
)

// PlaceOrderCommand represents a request to turn a session cart into a
// durable order. The caller mints the order id so it can reference the new
// order before the command runs.
//
// Example:
//
//	orderID := kernel.NewOrderID()
//	cmd, err := NewPlaceOrderCommand(orderID, sessionCart, "Asha", "12 MG Road, Pune")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed", orderID)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.OrderID
	cart         *cart.Cart
	customerName string
	address      string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place the given cart as an order.
// Validates that the order id is constructed, the cart is present and the
// customer name and delivery address are non-empty. Whether the cart holds
// any lines is checked at handling time, since the cart can change between
// construction and handling.
func NewPlaceOrderCommand(
	orderID kernel.OrderID, shoppingCart *cart.Cart, customerName, address string,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setCart(shoppingCart),
		placeCommand.setCustomerName(customerName),
		placeCommand.setAddress(address),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identity minted for the new order.
func (c PlaceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Cart returns the session cart to snapshot.
func (c PlaceOrderCommand) Cart() *cart.Cart {
	return c.cart
}

// CustomerName returns the name the order is placed under.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// Address returns the delivery address.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCart(shoppingCart *cart.Cart) error {
	if shoppingCart == nil {
		return ErrCartIsRequired
	}

	c.cart = shoppingCart
	return nil
}

func (c *PlaceOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.address = address
	return nil
}
