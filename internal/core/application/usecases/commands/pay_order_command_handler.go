package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// PayOrderCommandHandler handles the business logic for payment collection.
// Payment is only collected for delivered orders. Paying an already-paid
// order is a reported no-op: the customer is notified, no second payment is
// captured, and the original payment reference is kept.
type PayOrderCommandHandler struct {
	orders   ports.OrderRepository
	gateway  ports.PaymentGateway
	notifier ports.Notifier
}

// NewPayOrderCommandHandler creates a handler for payment collection.
func NewPayOrderCommandHandler(
	orders ports.OrderRepository,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		orders:   orders,
		gateway:  gateway,
		notifier: notifier,
	}
}

// Handle processes the payment collection command.
// The delivered-status check happens before the gateway call so an invalid
// order never reaches the payment provider, and again inside the mutation so
// the paid flag is set atomically.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.IsPaid() {
		h.notifier.Notify(ctx, fmt.Sprintf("Order %s is already paid.", cmd.OrderID()))
		return nil
	}

	if o.Status() != order.Delivered {
		return order.NewInvalidStateError(cmd.OrderID(), "pay", o.Status(), order.Delivered)
	}

	p, err := h.gateway.ProcessPayment(ctx, cmd.OrderID(), cmd.Amount(), cmd.Mode())
	if err != nil {
		return err
	}

	err = h.orders.Mutate(ctx, cmd.OrderID(), func(o *order.Order) error {
		return o.MarkPaid(p.ID())
	})
	if err != nil {
		return err
	}

	h.notifier.Notify(ctx,
		fmt.Sprintf("Payment of INR %s collected for Order %s. Mode: %s",
			cmd.Amount().String(), cmd.OrderID(), cmd.Mode()),
	)

	return nil
}
