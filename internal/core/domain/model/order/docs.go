// Package order provides domain entities and business logic for order management
// in the grocery ordering system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, lines, total, and lifecycle
//   - Line: An item position snapshotted from the cart at placement time
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, a customer name, and at least one line
//   - The order total is frozen at placement and never recomputed from the catalog
//   - Order status follows a defined workflow: Received -> Confirmed -> Shipped ->
//     OutForDelivery -> Delivered
//   - Orders can be cancelled from any non-terminal status
//   - Delivered and Cancelled are terminal; a delivered order cannot be cancelled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
