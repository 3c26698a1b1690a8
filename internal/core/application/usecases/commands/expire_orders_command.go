package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrExpireOrdersCommandIsNotConstructed = errors.New(
	"ExpireOrdersCommand must be created via NewExpireOrdersCommand constructor",
)

// ExpireOrdersCommand represents a maintenance sweep that cancels orders
// stuck in a cancellable status for longer than the timeout.
type ExpireOrdersCommand struct { //nolint:recvcheck //using for validation
	timeout time.Duration

	guard guard.ConstructorGuard
}

// NewExpireOrdersCommand creates a command to expire stale orders.
// Returns an error if the timeout is not positive.
func NewExpireOrdersCommand(timeout time.Duration) (ExpireOrdersCommand, error) {
	cmd := ExpireOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTimeout(timeout); err != nil {
		return ExpireOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOrdersCommandIsNotConstructed)
}

// Timeout returns the age after which a cancellable order expires.
func (c ExpireOrdersCommand) Timeout() time.Duration {
	return c.timeout
}

func (c *ExpireOrdersCommand) setTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return errs.NewValueIsInvalidError("timeout")
	}

	c.timeout = timeout
	return nil
}
