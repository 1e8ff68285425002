package order

import (
	"errors"
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyDelivered is returned when attempting to cancel an order
	// that has already reached the customer.
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")
)

// Order represents a customer grocery order. It is the aggregate root that
// manages the order lifecycle from placement through fulfilment to delivery
// or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty customer name and delivery address
//   - Must contain at least one line
//   - The total is frozen at placement and never recomputed from the catalog
//   - Status transitions follow defined business rules
//   - Can only be created through NewOrder or RestoreOrder constructors
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// customerName is the name the order was placed under
	customerName string

	// address is where the order is delivered
	address string

	// lines are the item positions snapshotted from the cart at placement
	lines []Line

	// total is the order total frozen at placement
	total kernel.Price

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the placement timestamp (UTC)
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order from the given cart lines. This is the entry
// point for placing an order: the status starts at Received, the placement
// time is recorded, and the total is computed from the lines and frozen.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid)
//   - customerName: Name the order is placed under (must be non-empty)
//   - address: Delivery address (must be non-empty)
//   - lines: Item positions snapshotted from the cart (must be non-empty)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	orderID := kernel.NewOrderID()
//	order, err := NewOrder(orderID, "Asha", "12 MG Road, Pune", lines)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.OrderID, customerName, address string, lines []Line) (*Order, error) {
	order := &Order{
		status:        Received,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setAddress(address),
		order.setLines(lines),
		order.setCreatedAt(time.Now().UTC()),
	); err != nil {
		return nil, err
	}

	total, err := totalOf(order.lines)
	if err != nil {
		return nil, err
	}
	order.total = total

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder which freezes a fresh total and starts at Received, this
// constructor restores the order to its previously persisted state, including
// its status, placement time, and the total recorded at placement.
//
// The total is taken from persistence rather than recomputed, preserving the
// amount the customer was quoted even if line data were ever migrated.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerName: Name the order was placed under
//   - address: Persisted delivery address
//   - lines: Persisted item positions
//   - total: Order total recorded at placement
//   - status: Persisted lifecycle status
//   - createdAt: Persisted placement timestamp
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Validation error if any parameter is invalid
func RestoreOrder(
	id kernel.OrderID,
	customerName string,
	address string,
	lines []Line,
	total kernel.Price,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setAddress(address),
		order.setLines(lines),
		order.setTotal(total),
		order.setStatus(status),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Lines returns the order's item positions.
// The returned slice is a copy to prevent external modification.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// Total returns the order total frozen at placement.
func (o *Order) Total() kernel.Price {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Advance moves the order one step along the fulfilment path.
//
// This method enforces the following business rules:
//   - The order must be in a non-terminal status
//   - The transition follows Received -> Confirmed -> Shipped ->
//     OutForDelivery -> Delivered
//
// Returns:
//   - nil on successful advancement
//   - error if the order is in a terminal status
//
// The lifecycle scheduler calls this on each tick until the order reaches
// Delivered or cancellation is observed.
func (o *Order) Advance() error {
	newStatus, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as cancelled.
//
// This method enforces the following business rules:
//   - A delivered order cannot be cancelled
//   - Cancelling an already-cancelled order is a no-op
//
// Returns:
//   - nil on successful cancellation or when the order was already cancelled
//   - ErrOrderAlreadyDelivered if the order has been delivered
func (o *Order) Cancel() error {
	if o.status == Cancelled {
		return nil
	}
	if o.status == Delivered {
		return ErrOrderAlreadyDelivered
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerName validates and sets the customer name.
// This is a private method used only during construction.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = customerName
	return nil
}

// setAddress validates and sets the delivery address.
// This is a private method used only during construction.
func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.address = address
	return nil
}

// setLines validates and sets the order's item positions.
// The order must contain at least one line and every line must be valid.
// This is a private method used only during construction.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

// setTotal validates and sets the persisted order total.
// Used during restoration to establish the total from persistent state.
func (o *Order) setTotal(total kernel.Price) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

// setStatus validates and sets the order status.
// Used during restoration to establish the status from persistent state.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCreatedAt validates and sets the placement timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

// totalOf sums the line totals into the order total.
func totalOf(lines []Line) (kernel.Price, error) {
	total := kernel.ZeroPrice()
	for _, line := range lines {
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
