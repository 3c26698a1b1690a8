package inmemory

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/ports"
)

var _ ports.CustomerRepository = &CustomerRepository{}

// CustomerRepository is the in-memory implementation of ports.CustomerRepository.
type CustomerRepository struct {
	customers *collection[customer.Customer]
}

// NewCustomerRepository creates an empty in-memory customer repository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: newCollection[customer.Customer]("customerId"),
	}
}

// Add persists a new customer.
func (r *CustomerRepository) Add(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.customers.add(aggregate.ID(), aggregate)
}

// Get retrieves a customer by ID.
func (r *CustomerRepository) Get(_ context.Context, id string) (*customer.Customer, error) {
	return r.customers.get(id)
}

// GetAll retrieves all customers in registration order.
func (r *CustomerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	return r.customers.getAll(), nil
}
