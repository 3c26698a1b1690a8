package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrOnboardDriverCommandIsNotConstructed = errors.New(
	"OnboardDriverCommand must be created via NewOnboardDriverCommand constructor",
)

// OnboardDriverCommand represents a request to register a new driver.
// A freshly onboarded driver starts available and is immediately offered to
// any orders waiting in the pending queue.
type OnboardDriverCommand struct { //nolint:recvcheck //using for validation
	driverID string
	name     string

	guard guard.ConstructorGuard
}

// NewOnboardDriverCommand creates a command to register a new driver.
// Returns an error if the driver ID or name is empty.
func NewOnboardDriverCommand(driverID, name string) (OnboardDriverCommand, error) {
	cmd := OnboardDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
	); err != nil {
		return OnboardDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OnboardDriverCommand) Validate() error {
	return c.guard.Validate(ErrOnboardDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c OnboardDriverCommand) DriverID() string {
	return c.driverID
}

// Name returns the driver's display name.
func (c OnboardDriverCommand) Name() string {
	return c.name
}

func (c *OnboardDriverCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverID")
	}

	c.driverID = driverID
	return nil
}

func (c *OnboardDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
