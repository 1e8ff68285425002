// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the grocery ordering system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CheckoutService: A domain service that snapshots a session cart into a
//     placed order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
