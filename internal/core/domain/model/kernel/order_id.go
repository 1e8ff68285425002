package kernel

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"kirana/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order ID must be created via NewOrderID or OrderIDFromString")

// orderIDPattern is the canonical shape of an order identifier: the "ORD-"
// prefix followed by eight uppercase hexadecimal characters.
var orderIDPattern = regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)

// OrderID is a value object that identifies an order, formatted as
// "ORD-XXXXXXXX" where X is an uppercase hexadecimal digit. The short,
// pronounceable form is read back to customers verbatim, so the format is
// part of the contract rather than an implementation detail.
//
// The zero value of OrderID is invalid and must be constructed using
// NewOrderID or OrderIDFromString.
//
// OrderID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Generate a fresh identifier for a new order
//	id := kernel.NewOrderID()
//
//	// Parse an identifier received from a customer or external system
//	id, err := kernel.OrderIDFromString("ORD-3F82A1C4")
//	if err != nil {
//	    // handle error
//	}
type OrderID struct {
	value string
}

// NewOrderID generates a new random order identifier. The hexadecimal part is
// derived from a version 4 UUID, which keeps collisions vanishingly unlikely
// at this system's order volumes.
//
// Example:
//
//	orderID := kernel.NewOrderID()
//	fmt.Println(orderID.String()) // e.g., "ORD-3F82A1C4"
func NewOrderID() OrderID {
	raw := uuid.New()
	return OrderID{
		value: "ORD-" + strings.ToUpper(hex.EncodeToString(raw[:4])),
	}
}

// OrderIDFromString parses an order identifier from its string representation.
// Input is case-insensitive and normalized to the canonical uppercase form,
// since identifiers often arrive transcribed from voice or chat.
//
// Returns an error if the string does not match the "ORD-XXXXXXXX" shape.
// This function is typically used when reconstructing orders from persistence
// or when resolving identifiers supplied by customers.
//
// Example:
//
//	id, err := kernel.OrderIDFromString("ord-3f82a1c4")
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
//	id.String() // "ORD-3F82A1C4"
func OrderIDFromString(s string) (OrderID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !orderIDPattern.MatchString(normalized) {
		return OrderID{}, fmt.Errorf("invalid order ID format: %q", s)
	}
	return OrderID{value: normalized}, nil
}

// String returns the canonical string representation, e.g. "ORD-3F82A1C4".
// For a zero value OrderID, this returns the empty string.
func (o OrderID) String() string {
	return o.value
}

// IsEqual compares two order identifiers for equality.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.value == other.value
}

// Validate checks if the OrderID is properly constructed.
// Returns ErrOrderIDIsNotConstructed if the OrderID is a zero value.
func (o OrderID) Validate() error {
	if o.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
