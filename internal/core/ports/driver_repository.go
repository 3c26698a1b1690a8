package ports

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Provides methods for storing, retrieving, and atomically mutating driver
// entities including their availability and rating accumulator.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// Returns an ObjectAlreadyExistsError if the driver ID is already taken.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no driver with the ID exists.
	Get(ctx context.Context, id string) (*driver.Driver, error)

	// GetAll retrieves all drivers in registration order.
	// The stable ordering is what makes first-available matching and its
	// tie-breaking deterministic.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// Mutate applies fn to the driver with the given ID as one atomic
	// read-modify-write step. No concurrent Mutate on the same driver can
	// interleave with fn; if fn returns an error the driver is left unchanged.
	// Returns an ObjectNotFoundError if no driver with the ID exists.
	Mutate(ctx context.Context, id string, fn func(*driver.Driver) error) error
}
