package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPickupOrderCommandIsNotConstructed = errors.New(
	"PickupOrderCommand must be created via NewPickupOrderCommand constructor",
)

// PickupOrderCommand represents a driver collecting an assigned order.
type PickupOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	driverID string

	guard guard.ConstructorGuard
}

// NewPickupOrderCommand creates a command for a driver to pick up an order.
// Returns an error if the order ID or driver ID is empty.
func NewPickupOrderCommand(orderID, driverID string) (PickupOrderCommand, error) {
	cmd := PickupOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return PickupOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickupOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being picked up.
func (c PickupOrderCommand) OrderID() string {
	return c.orderID
}

// DriverID returns the identifier of the collecting driver.
func (c PickupOrderCommand) DriverID() string {
	return c.driverID
}

func (c *PickupOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *PickupOrderCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverID")
	}

	c.driverID = driverID
	return nil
}
