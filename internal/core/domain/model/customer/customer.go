// Package customer provides the Customer entity for the delivery marketplace.
// Customers are pure registry data: onboarding and lookup only, with no
// lifecycle of their own. Orders reference customers by ID.
package customer

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when using a Customer that was
	// not created through the NewCustomer factory method.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a person who places orders in the marketplace.
type Customer struct {
	// id uniquely identifies the customer
	id string
	// name is the human-readable name of the customer
	name string
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the specified parameters.
//
// Parameters:
//   - id: Unique identifier for the customer (must be non-empty)
//   - name: Human-readable name (must be non-empty)
func NewCustomer(id, name string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(id, name string) (*Customer, error) {
	return NewCustomer(id, name)
}

// Validate checks if the Customer was properly constructed using NewCustomer.
// The zero value of Customer is invalid and will fail this validation.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id == other.id
}

// ID returns the unique identifier of the customer.
func (c *Customer) ID() string {
	return c.id
}

// Name returns the human-readable name of the customer.
func (c *Customer) Name() string {
	return c.name
}

// setID sets the customer's unique identifier with validation.
// This is an internal setter used during construction.
func (c *Customer) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

// setName sets the customer's name with validation.
// This is an internal setter used during construction.
func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
