package inmemory

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/ports"
)

var _ ports.DriverRepository = &DriverRepository{}

// DriverRepository is the in-memory implementation of ports.DriverRepository.
type DriverRepository struct {
	drivers *collection[driver.Driver]
}

// NewDriverRepository creates an empty in-memory driver repository.
func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		drivers: newCollection[driver.Driver]("driverId"),
	}
}

// Add persists a new driver aggregate.
func (r *DriverRepository) Add(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.drivers.add(aggregate.ID(), aggregate)
}

// Get retrieves a driver aggregate by ID.
func (r *DriverRepository) Get(_ context.Context, id string) (*driver.Driver, error) {
	return r.drivers.get(id)
}

// GetAll retrieves all drivers in registration order.
func (r *DriverRepository) GetAll(_ context.Context) ([]*driver.Driver, error) {
	return r.drivers.getAll(), nil
}

// Mutate atomically applies fn to the driver with the given ID.
func (r *DriverRepository) Mutate(_ context.Context, id string, fn func(*driver.Driver) error) error {
	return r.drivers.mutate(id, fn)
}
