// Package ports defines the interfaces between the core and its adapters.
// Repository interfaces establish contracts between the domain layer and
// infrastructure; collaborator interfaces (notification, payment capture)
// describe the external services the core calls into. These contracts enable
// dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and atomically mutating order
// entities. Orders are never physically deleted; terminal orders are retained.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns an ObjectAlreadyExistsError if the order ID is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no order with the ID exists.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll retrieves all orders in creation order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllUncompleted retrieves all non-terminal orders in creation order.
	// Used by dashboards to show work still in flight.
	GetAllUncompleted(ctx context.Context) ([]*order.Order, error)

	// Mutate applies fn to the order with the given ID as one atomic
	// read-modify-write step. No concurrent Mutate on the same order can
	// interleave with fn; if fn returns an error the order is left unchanged.
	// Returns an ObjectNotFoundError if no order with the ID exists.
	Mutate(ctx context.Context, id string, fn func(*order.Order) error) error
}
