package services

import (
	"kirana/internal/core/domain/model/cart"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"
)

// CheckoutService is a domain service that turns a session cart into a placed
// order.
//
// Key responsibilities:
//   - Rejecting empty carts before any order state exists
//   - Snapshotting cart lines into immutable order lines
//   - Freezing the total at placement
//
// Business rules:
//   - The cart must contain at least one line
//   - Each order line captures the cart line's name, unit price, quantity
//     and notes as they were at checkout
//   - The resulting order starts in the received status
//
// Example usage:
//
//	checkout := services.NewCheckoutService()
//	placed, err := checkout.Checkout(kernel.NewOrderID(), sessionCart, "Asha", "12 MG Road, Pune")
//	if errors.Is(err, cart.ErrCartIsEmpty) {
//	    // Ask the shopper to add something first
//	    return
//	}
type CheckoutService struct{}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// Checkout builds a new order from the given cart.
//
// Parameters:
//   - id: Identity for the new order, minted by the caller
//   - shoppingCart: The session cart to snapshot (must be non-nil, non-empty)
//   - customerName: Name the order is placed under (must be non-empty)
//   - address: Delivery address (must be non-empty)
//
// Returns:
//   - *order.Order: A freshly constructed order in the received status
//   - error: cart.ErrCartIsEmpty for an empty cart, or validation errors
//
// Checkout never mutates the cart; clearing it after the order is persisted
// is the caller's responsibility.
func (s CheckoutService) Checkout(
	id kernel.OrderID, shoppingCart *cart.Cart, customerName, address string,
) (*order.Order, error) {
	if shoppingCart == nil {
		return nil, errs.NewValueIsRequiredError("cart")
	}

	cartLines := shoppingCart.Lines()
	if len(cartLines) == 0 {
		return nil, cart.ErrCartIsEmpty
	}

	orderLines := make([]order.Line, 0, len(cartLines))
	for _, cartLine := range cartLines {
		orderLine, err := order.NewLine(
			cartLine.ItemID(),
			cartLine.Name(),
			cartLine.UnitPrice(),
			cartLine.Quantity(),
			cartLine.Notes(),
		)
		if err != nil {
			return nil, err
		}

		orderLines = append(orderLines, orderLine)
	}

	return order.NewOrder(id, customerName, address, orderLines)
}
