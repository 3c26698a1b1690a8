package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a driver delivering a picked-up order.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	driverID string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command for a driver to deliver an order.
// Returns an error if the order ID or driver ID is empty.
func NewCompleteOrderCommand(orderID, driverID string) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c CompleteOrderCommand) OrderID() string {
	return c.orderID
}

// DriverID returns the identifier of the delivering driver.
func (c CompleteOrderCommand) DriverID() string {
	return c.driverID
}

func (c *CompleteOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverID")
	}

	c.driverID = driverID
	return nil
}
