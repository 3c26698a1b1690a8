package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRateDriverCommandIsNotConstructed = errors.New(
	"RateDriverCommand must be created via NewRateDriverCommand constructor",
)

// RateDriverCommand represents a customer rating a driver.
type RateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID string
	score    int

	guard guard.ConstructorGuard
}

// NewRateDriverCommand creates a command to rate a driver.
// Returns an error if the driver ID is empty or the score is outside 1..5.
func NewRateDriverCommand(driverID string, score int) (RateDriverCommand, error) {
	cmd := RateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setScore(score),
	); err != nil {
		return RateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateDriverCommand) Validate() error {
	return c.guard.Validate(ErrRateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the rated driver.
func (c RateDriverCommand) DriverID() string {
	return c.driverID
}

// Score returns the rating score.
func (c RateDriverCommand) Score() int {
	return c.score
}

func (c *RateDriverCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverID")
	}

	c.driverID = driverID
	return nil
}

func (c *RateDriverCommand) setScore(score int) error {
	if score < driver.MinScore || score > driver.MaxScore {
		return errs.NewValueIsOutOfRangeError("score", score, driver.MinScore, driver.MaxScore)
	}

	c.score = score
	return nil
}
