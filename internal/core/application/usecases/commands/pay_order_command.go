package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents collecting payment for a delivered order.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	amount  decimal.Decimal
	mode    payment.Mode

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to collect payment for an order.
// Validates that the order ID is present, the amount is positive and the
// payment mode is known.
func NewPayOrderCommand(orderID string, amount decimal.Decimal, mode payment.Mode) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
		cmd.setMode(mode),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid for.
func (c PayOrderCommand) OrderID() string {
	return c.orderID
}

// Amount returns the payment amount.
func (c PayOrderCommand) Amount() decimal.Decimal {
	return c.amount
}

// Mode returns the payment mode.
func (c PayOrderCommand) Mode() payment.Mode {
	return c.mode
}

func (c *PayOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *PayOrderCommand) setMode(mode payment.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}
