package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order that has not
// been picked up yet.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Returns an error if the order ID is empty.
func NewCancelOrderCommand(orderID string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c CancelOrderCommand) OrderID() string {
	return c.orderID
}

func (c *CancelOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}
