// Package catalog provides the read-only product catalog for the grocery
// ordering system. It implements the Item entity and the in-memory Store the
// assistant searches when a shopper asks for a product.
//
// The package includes:
//   - Item: A single catalog product with price, brand, size, and search tags
//   - Store: An immutable lookup built once at startup from persisted rows
//
// Key business rules:
//   - Items must have a valid id, name, category, and non-negative price
//   - The catalog never changes after load; orders snapshot item data instead
//     of referencing it
//   - Search matches name substrings or exact tags, case-insensitively, with
//     deterministic ordering and a fixed result cap
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package catalog
