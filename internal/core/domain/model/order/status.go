package order

import (
	"fmt"

	"kirana/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	Received ──> Confirmed ──> Shipped ──> OutForDelivery ──> Delivered
//	    │             │            │               │
//	    └─────────────┴────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal states with no further transitions.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display. The string form is
// lowercase snake case ("out_for_delivery") and is what gets stored in the
// database and echoed back through the tool surface.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status when an order is first placed.
	Received

	// Confirmed indicates the store has acknowledged the order.
	Confirmed

	// Shipped indicates the order has left the store.
	Shipped

	// OutForDelivery indicates the order is on its final leg to the customer.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the customer cancelled the order before delivery.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Received:       "received",
		Confirmed:      "confirmed",
		Shipped:        "shipped",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:       "received",
		Confirmed:      "confirmed",
		Shipped:        "shipped",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses a status from its persisted string representation.
//
// Returns:
//   - the matching Status for "received", "confirmed", "shipped",
//     "out_for_delivery", "delivered", or "cancelled"
//   - error if the string does not name a valid status
//
// This function is used when rehydrating orders from the database or when
// interpreting status values from external sources.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Received, Confirmed, Shipped, OutForDelivery,
// Delivered, Cancelled. Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
//
// Returns:
//   - "received", "confirmed", "shipped", "out_for_delivery", "delivered",
//     or "cancelled" for valid statuses
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
// Delivered and Cancelled are the two terminal states.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// NonTerminalStatuses returns the statuses of orders still moving through
// fulfilment, in path order. Orders in these statuses are picked up by the
// resume sweep and may still be cancelled.
func NonTerminalStatuses() []Status {
	return []Status{Received, Confirmed, Shipped, OutForDelivery}
}

// Predecessors returns the statuses a guarded status write may start from.
// The persistence layer uses this as the compare part of its
// compare-and-swap: an update to status s only applies while the stored
// status is one of s's predecessors.
//
// Every status on the fulfilment path has exactly one predecessor; Cancelled
// is reachable from any non-terminal status. Received starts the path and
// has none.
func (s Status) Predecessors() ([]Status, error) {
	//nolint:exhaustive // Received, Unknown and invalid values fall through to the error
	switch s {
	case Confirmed:
		return []Status{Received}, nil
	case Shipped:
		return []Status{Confirmed}, nil
	case OutForDelivery:
		return []Status{Shipped}, nil
	case Delivered:
		return []Status{OutForDelivery}, nil
	case Cancelled:
		return NonTerminalStatuses(), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s has no predecessor statuses", s.String()),
		)
	}
}

// Next transitions the status one step along the fulfilment path.
//
// Valid transitions:
//   - Received -> Confirmed
//   - Confirmed -> Shipped
//   - Shipped -> OutForDelivery
//   - OutForDelivery -> Delivered
//
// Invalid transitions:
//   - Delivered -> (terminal state)
//   - Cancelled -> (terminal state)
//   - Unknown -> (invalid initial state)
//
// Returns:
//   - (next status, nil) on valid transition
//   - (0, error) if no further advancement is allowed from the current status
//
// This method is used by the lifecycle scheduler to walk orders toward
// delivery one interval at a time.
func (s Status) Next() (Status, error) {
	//nolint:exhaustive // terminal and invalid statuses fall through to the error
	switch s {
	case Received:
		return Confirmed, nil
	case Confirmed:
		return Shipped, nil
	case Shipped:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to advance", s.String()),
		)
	}
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Received -> Cancelled
//   - Confirmed -> Cancelled
//   - Shipped -> Cancelled
//   - OutForDelivery -> Cancelled
//
// Invalid transitions:
//   - Delivered -> Cancelled (order already reached the customer)
//   - Cancelled -> Cancelled (already terminal)
//   - Unknown -> Cancelled (invalid initial state)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if cancellation is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
