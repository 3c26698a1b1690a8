package commands

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/ports"
)

// OnboardDriverCommandHandler registers new drivers in the marketplace.
type OnboardDriverCommandHandler struct {
	drivers    ports.DriverRepository
	dispatcher Dispatcher
}

// NewOnboardDriverCommandHandler creates a handler for driver onboarding.
func NewOnboardDriverCommandHandler(
	drivers ports.DriverRepository,
	dispatcher Dispatcher,
) OnboardDriverCommandHandler {
	return OnboardDriverCommandHandler{
		drivers:    drivers,
		dispatcher: dispatcher,
	}
}

// Handle processes the driver onboarding command.
// Returns a conflict error if a driver with the same ID already exists.
// The new driver starts available, so queued orders get a chance to match.
func (h *OnboardDriverCommandHandler) Handle(ctx context.Context, cmd OnboardDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = h.drivers.Add(ctx, d); err != nil {
		return err
	}

	return h.dispatcher.OnDriverAvailable(ctx, d.ID())
}
