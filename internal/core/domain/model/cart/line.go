package cart

import (
	"kirana/internal/core/domain/model/kernel"
)

// Line is a single item position in a session cart. The name and unit price
// are denormalized from the catalog at add time, so cart totals stay stable
// while the shopper keeps talking.
//
// Lines are created and mutated only through Cart methods, which keep the
// quantity positive and merge repeated adds of the same item.
type Line struct {
	// itemID identifies the catalog item this line was created from
	itemID string

	// name is the item's display name captured at add time
	name string

	// unitPrice is the item's price captured at add time
	unitPrice kernel.Price

	// quantity is the number of units in the cart (always positive)
	quantity int

	// notes carries optional shopper instructions for this item
	notes string
}

// ItemID returns the catalog identifier of the item.
func (l Line) ItemID() string {
	return l.itemID
}

// Name returns the item's display name as captured at add time.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the per-unit price as captured at add time.
func (l Line) UnitPrice() kernel.Price {
	return l.unitPrice
}

// Quantity returns the number of units in the cart.
func (l Line) Quantity() int {
	return l.quantity
}

// Notes returns the shopper instructions attached to this line, if any.
func (l Line) Notes() string {
	return l.notes
}

// Total returns the line total (unit price times quantity).
func (l Line) Total() (kernel.Price, error) {
	return l.unitPrice.Multiply(l.quantity)
}
