package order

import (
	"errors"
	"fmt"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

// ErrLineIsNotConstructed indicates that a Line was not properly initialized
// through the NewLine constructor function.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line represents a single item position within an order. It snapshots the
// catalog item's identity and unit price at the moment the order was placed,
// so later catalog changes never alter a placed order.
//
// Key business rules:
//   - Must be constructed through NewLine constructor
//   - Item ID and name must be non-empty
//   - Unit price must be a constructed Price
//   - Quantity must be positive
//
// Example usage:
//
//	price, _ := kernel.PriceFromString("45.00")
//	line, err := order.NewLine("bread", "Whole Wheat Bread", price, 2, "sliced")
//	if err != nil {
//	    return err
//	}
//	lineTotal, _ := line.Total() // 90.00
type Line struct {
	// itemID identifies the catalog item this line was created from
	itemID string

	// name is the item's display name at the time of ordering
	name string

	// unitPrice is the item's price at the time of ordering
	unitPrice kernel.Price

	// quantity is the number of units ordered (always positive)
	quantity int

	// notes carries optional shopper instructions for this item
	notes string

	// guard ensures the line was properly initialized
	guard guard.ConstructorGuard
}

// NewLine creates a new order line with validation.
// This is the only way to create a valid Line instance.
//
// Parameters:
//   - itemID: Catalog identifier of the item (must be non-empty)
//   - name: Display name of the item (must be non-empty)
//   - unitPrice: Price per unit at ordering time (must be constructed)
//   - quantity: Number of units (must be positive)
//   - notes: Optional shopper instructions (may be empty)
//
// Returns:
//   - Line: Properly initialized order line
//   - error: Aggregated validation errors, if any
func NewLine(itemID, name string, unitPrice kernel.Price, quantity int, notes string) (Line, error) {
	line := Line{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setItemID(itemID),
		line.setName(name),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate checks if the Line was properly constructed using NewLine.
// The zero value of Line is invalid and will fail this validation.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ItemID returns the catalog identifier of the ordered item.
func (l Line) ItemID() string {
	return l.itemID
}

// Name returns the item's display name as it was at ordering time.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the per-unit price frozen at ordering time.
func (l Line) UnitPrice() kernel.Price {
	return l.unitPrice
}

// Quantity returns the number of units ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// Notes returns the shopper instructions attached to this line, if any.
func (l Line) Notes() string {
	return l.notes
}

// Total returns the line total (unit price times quantity).
func (l Line) Total() (kernel.Price, error) {
	if err := l.Validate(); err != nil {
		return kernel.Price{}, err
	}

	return l.unitPrice.Multiply(l.quantity)
}

// setItemID sets the catalog item identifier with validation.
// This is a private method used only during construction.
func (l *Line) setItemID(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("item id")
	}

	l.itemID = itemID
	return nil
}

// setName sets the item display name with validation.
// This is a private method used only during construction.
func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	l.name = name
	return nil
}

// setUnitPrice sets the unit price with validation.
// This is a private method used only during construction.
func (l *Line) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	l.unitPrice = unitPrice
	return nil
}

// setQuantity sets the quantity with validation.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	l.quantity = quantity
	return nil
}
