// Package payment provides the Payment entity recorded when a delivered
// order is settled. Payments are captured by an external gateway collaborator
// and stored for reference; the core never mutates them after capture.
package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrPaymentIsNotConstructed is returned when using a Payment that was
	// not created through the NewPayment factory method.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
)

// Payment is the record of a captured payment for a delivered order.
// Capture is assumed synchronous and successful; there is no failure state.
type Payment struct {
	// id uniquely identifies the payment transaction
	id string
	// orderID references the paid order
	orderID string
	// amount is the captured amount
	amount decimal.Decimal
	// mode is the payment instrument used
	mode Mode
	// capturedAt is the capture timestamp
	capturedAt time.Time
	// guard ensures the payment was properly constructed
	guard guard.ConstructorGuard
}

// NewPayment creates a new captured Payment record.
//
// Parameters:
//   - id: Unique transaction identifier (must be non-empty)
//   - orderID: The paid order's ID (must be non-empty)
//   - amount: Captured amount (must be positive)
//   - mode: Payment instrument (must be a valid Mode)
func NewPayment(id, orderID string, amount decimal.Decimal, mode Mode) (*Payment, error) {
	payment := &Payment{
		capturedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setOrderID(orderID),
		payment.setAmount(amount),
		payment.setMode(mode),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// RestorePayment reconstructs a Payment record from persistent storage.
func RestorePayment(id, orderID string, amount decimal.Decimal, mode Mode, capturedAt time.Time) (*Payment, error) {
	payment, err := NewPayment(id, orderID, amount, mode)
	if err != nil {
		return nil, err
	}

	payment.capturedAt = capturedAt
	return payment, nil
}

// Validate checks if the Payment was properly constructed using NewPayment.
// The zero value of Payment is invalid and will fail this validation.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the unique transaction identifier.
func (p *Payment) ID() string {
	return p.id
}

// OrderID returns the ID of the paid order.
func (p *Payment) OrderID() string {
	return p.orderID
}

// Amount returns the captured amount.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// Mode returns the payment instrument used.
func (p *Payment) Mode() Mode {
	return p.mode
}

// CapturedAt returns the capture timestamp.
func (p *Payment) CapturedAt() time.Time {
	return p.capturedAt
}

// setID sets the transaction identifier with validation.
// This is an internal setter used during construction.
func (p *Payment) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

// setOrderID sets the paid order reference with validation.
// This is an internal setter used during construction.
func (p *Payment) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	p.orderID = orderID
	return nil
}

// setAmount sets the captured amount with validation.
// This is an internal setter used during construction.
func (p *Payment) setAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidError("amount is invalid")
	}
	p.amount = amount
	return nil
}

// setMode sets the payment instrument with validation.
// This is an internal setter used during construction.
func (p *Payment) setMode(mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	p.mode = mode
	return nil
}
