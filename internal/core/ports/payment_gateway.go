package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/payment"
)

// PaymentGateway is the outbound contract for payment capture.
//
// Capture is synchronous and assumed to succeed; the core performs no
// retries. A gateway failure propagates unchanged to the caller of the pay
// operation.
type PaymentGateway interface {
	// ProcessPayment captures a payment for the given order and returns the
	// resulting record.
	ProcessPayment(ctx context.Context, orderID string, amount decimal.Decimal, mode payment.Mode) (*payment.Payment, error)
}
