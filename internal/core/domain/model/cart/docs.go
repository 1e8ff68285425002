// Package cart provides the per-session shopping cart for the grocery
// ordering system. A cart collects catalog items while the shopper talks to
// the assistant; placing an order snapshots the cart into an immutable order
// and clears it.
//
// The package includes:
//   - Cart: A mutable, mutex-guarded line collection for one session
//   - Line: An item position with denormalized name and unit price
//   - Registry: The session id to cart mapping shared by all adapters
//
// Key business rules:
//   - Adding an item already in the cart accumulates quantity instead of
//     duplicating the line
//   - Quantities are always positive; a quantity below one removes the line
//   - The cart total is recomputed from its lines on every call
package cart
