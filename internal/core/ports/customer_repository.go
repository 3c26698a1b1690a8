package ports

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// Customers are registry data with no lifecycle, so the contract is
// onboarding and lookup only.
type CustomerRepository interface {
	// Add persists a new customer to storage.
	// Returns an ObjectAlreadyExistsError if the customer ID is already taken.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	// Returns an ObjectNotFoundError if no customer with the ID exists.
	Get(ctx context.Context, id string) (*customer.Customer, error)

	// GetAll retrieves all customers in registration order.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
