// Package payments provides the payment gateway adapter.
//
// There is no external payment provider behind it: captures always succeed
// and the resulting payment records are kept in the payment repository. The
// adapter still sits behind the ports.PaymentGateway contract so a real
// provider can replace it without touching the core.
package payments

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"
)

var _ ports.PaymentGateway = &Gateway{}

// Gateway captures payments and records them in the payment repository.
type Gateway struct {
	payments ports.PaymentRepository
	logger   *slog.Logger
}

// NewGateway creates a recording payment gateway.
// Passing a nil logger falls back to slog.Default.
func NewGateway(payments ports.PaymentRepository, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}

	return &Gateway{
		payments: payments,
		logger:   logger.With("component", "payment-gateway"),
	}
}

// ProcessPayment captures a payment for the given order.
// Each capture gets a fresh UUID and is persisted before it is returned.
func (g *Gateway) ProcessPayment(
	ctx context.Context,
	orderID string,
	amount decimal.Decimal,
	mode payment.Mode,
) (*payment.Payment, error) {
	p, err := payment.NewPayment(uuid.NewString(), orderID, amount, mode)
	if err != nil {
		return nil, err
	}

	if err = g.payments.Add(ctx, p); err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "payment captured",
		"payment_id", p.ID(),
		"order_id", orderID,
		"amount", amount.String(),
		"mode", mode.String(),
	)

	return p, nil
}
