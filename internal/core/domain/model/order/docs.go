// Package order provides domain entities and business logic for order management
// in the delivery marketplace. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - ItemType: The enumerated category of goods an order carries
//
// Key business rules:
//   - Orders must have a valid unique identifier, customer, item category,
//     quantity within [1, 10] and weight within (0, 50.0]
//   - Order status follows a defined workflow:
//     Pending -> Assigned -> PickedUp -> Delivered
//   - Pending and Assigned orders may be cancelled; once picked up, an order
//     can never be cancelled
//   - Payment is recorded only against Delivered orders and is idempotent
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
