package cart

import (
	"errors"
	"fmt"
	"sync"

	"kirana/internal/core/domain/model/catalog"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when an operation needs at least one line in the
// cart, such as placing an order.
var ErrCartIsEmpty = errors.New("cart is empty")

// Cart holds the items a session is about to order. A cart lives in memory
// for the lifetime of its session and may be hit by concurrent requests, so
// every method locks.
//
// Key business rules:
//   - Adding an item already in the cart accumulates its quantity; non-empty
//     notes replace the previous notes
//   - Quantities are always positive; setting a quantity below one removes
//     the line
//   - The total is recomputed from the lines on every call, never cached
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts the given quantity of a catalog item into the cart. The item's
// name and price are captured at this moment. If the item is already in the
// cart the quantity accumulates and non-empty notes overwrite the old ones.
func (c *Cart) Add(item catalog.Item, quantity int, notes string) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for idx := range c.lines {
		if c.lines[idx].itemID == item.ID() {
			c.lines[idx].quantity += quantity
			if notes != "" {
				c.lines[idx].notes = notes
			}
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		itemID:    item.ID(),
		name:      item.Name(),
		unitPrice: item.Price(),
		quantity:  quantity,
		notes:     notes,
	})

	return nil
}

// Remove deletes the line for the given item id. It returns the removed line
// so callers can name the item, and whether a line was actually removed;
// removing an absent item is a no-op.
func (c *Cart) Remove(itemID string) (Line, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for idx := range c.lines {
		if c.lines[idx].itemID == itemID {
			removed := c.lines[idx]
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
			return removed, true
		}
	}

	return Line{}, false
}

// SetQuantity replaces the quantity of an existing line. A quantity below one
// removes the line instead. It returns the line as it stands after the change
// (for a removal, as it stood before) and whether the item was in the cart.
func (c *Cart) SetQuantity(itemID string, quantity int) (Line, bool) {
	if quantity < 1 {
		return c.Remove(itemID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for idx := range c.lines {
		if c.lines[idx].itemID == itemID {
			c.lines[idx].quantity = quantity
			return c.lines[idx], true
		}
	}

	return Line{}, false
}

// Lines returns the cart's lines in the order items were first added.
// The returned slice is a copy to prevent external modification.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.lines) == 0
}

// Total sums the line totals. It is recomputed on every call.
func (c *Cart) Total() (kernel.Price, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := kernel.ZeroPrice()
	for _, line := range c.lines {
		lineTotal, err := line.Total()
		if err != nil {
			return kernel.Price{}, err
		}

		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Price{}, err
		}
	}

	return total, nil
}

// Clear removes every line from the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}
