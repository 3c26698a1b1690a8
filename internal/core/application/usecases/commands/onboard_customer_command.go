package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrOnboardCustomerCommandIsNotConstructed = errors.New(
	"OnboardCustomerCommand must be created via NewOnboardCustomerCommand constructor",
)

// OnboardCustomerCommand represents a request to register a new customer.
type OnboardCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID string
	name       string

	guard guard.ConstructorGuard
}

// NewOnboardCustomerCommand creates a command to register a new customer.
// Returns an error if the customer ID or name is empty.
func NewOnboardCustomerCommand(customerID, name string) (OnboardCustomerCommand, error) {
	cmd := OnboardCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
	); err != nil {
		return OnboardCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OnboardCustomerCommand) Validate() error {
	return c.guard.Validate(ErrOnboardCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c OnboardCustomerCommand) CustomerID() string {
	return c.customerID
}

// Name returns the customer's display name.
func (c OnboardCustomerCommand) Name() string {
	return c.name
}

func (c *OnboardCustomerCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}

	c.customerID = customerID
	return nil
}

func (c *OnboardCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
