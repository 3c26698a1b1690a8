package commands

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/ports"
)

// OnboardCustomerCommandHandler registers new customers in the marketplace.
type OnboardCustomerCommandHandler struct {
	customers ports.CustomerRepository
}

// NewOnboardCustomerCommandHandler creates a handler for customer onboarding.
func NewOnboardCustomerCommandHandler(customers ports.CustomerRepository) OnboardCustomerCommandHandler {
	return OnboardCustomerCommandHandler{
		customers: customers,
	}
}

// Handle processes the customer onboarding command.
// Returns a conflict error if a customer with the same ID already exists.
func (h *OnboardCustomerCommandHandler) Handle(ctx context.Context, cmd OnboardCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name())
	if err != nil {
		return err
	}

	return h.customers.Add(ctx, c)
}
