package kernel

import (
	"fmt"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly initialized Price.
// Prices must be created using NewPrice or PriceFromString constructors to ensure validity.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice or PriceFromString constructors")

// Price represents a non-negative monetary amount in rupees with two decimal
// places of precision. Price is an immutable value object backed by
// arbitrary-precision decimals, so cart totals never accumulate float drift.
// The zero value of Price is invalid and will fail validation - use
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.PriceFromString("45.00")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Price: %s", price) // Output: 45.00
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a new Price from a decimal amount.
// The amount must be non-negative and is rounded to two decimal places.
//
// Parameters:
//   - amount: The monetary amount (must be >= 0)
//
// Returns:
//   - Price: A valid price instance
//   - error: Validation error if the amount is negative
func NewPrice(amount decimal.Decimal) (Price, error) {
	price := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := price.setAmount(amount); err != nil {
		return Price{}, err
	}

	return price, nil
}

// PriceFromString parses a Price from its decimal string representation,
// e.g. "45.00" or "123.5". Returns an error if the string is not a valid
// decimal number or represents a negative amount.
//
// This function is typically used when loading prices from persistence or
// configuration.
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// ZeroPrice returns a valid Price of zero rupees.
// It is the identity element for Add and the starting total of an empty cart.
func ZeroPrice() Price {
	return Price{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the Price was properly constructed using a constructor.
// The zero value of Price is invalid and will fail this validation.
//
// Returns:
//   - error: ErrPriceIsNotConstructed if the price was not properly initialized, nil otherwise
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the underlying decimal amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Add returns the sum of two prices.
// Both prices must be properly constructed for the operation to succeed.
//
// Example:
//
//	bread, _ := kernel.PriceFromString("45.00")
//	eggs, _ := kernel.PriceFromString("40.00")
//	total, _ := bread.Add(eggs) // 85.00
func (p Price) Add(other Price) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	if err := other.Validate(); err != nil {
		return Price{}, err
	}

	return NewPrice(p.amount.Add(other.amount))
}

// Multiply returns the price scaled by an integer quantity.
// The quantity must be positive; scaling by zero or a negative count has no
// meaning for an order line.
//
// Example:
//
//	eggs, _ := kernel.PriceFromString("40.00")
//	lineTotal, _ := eggs.Multiply(3) // 120.00
func (p Price) Multiply(quantity int) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	if quantity <= 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return NewPrice(p.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// IsEqual compares two prices for numeric equality, ignoring representation
// differences such as trailing zeros.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String returns the amount formatted with exactly two decimal places,
// e.g. "45.00". This method implements the fmt.Stringer interface.
func (p Price) String() string {
	return p.amount.StringFixed(2)
}

// setAmount sets the price amount with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Pointer receivers on private setters enable self-encapsulated validation of business
// requirements during object construction.
func (p *Price) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", amount))
	}

	p.amount = amount.Round(2)
	return nil
}
