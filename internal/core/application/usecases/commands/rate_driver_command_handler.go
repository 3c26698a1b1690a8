package commands

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/ports"
)

// RateDriverCommandHandler handles the business logic for driver ratings.
// Ratings feed the driver's running average; every accepted score counts.
type RateDriverCommandHandler struct {
	drivers ports.DriverRepository
}

// NewRateDriverCommandHandler creates a handler for driver ratings.
func NewRateDriverCommandHandler(drivers ports.DriverRepository) RateDriverCommandHandler {
	return RateDriverCommandHandler{
		drivers: drivers,
	}
}

// Handle processes the driver rating command.
func (h *RateDriverCommandHandler) Handle(ctx context.Context, cmd RateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.drivers.Mutate(ctx, cmd.DriverID(), func(d *driver.Driver) error {
		return d.AddRating(cmd.Score())
	})
}
