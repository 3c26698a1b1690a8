package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// PickupOrderCommandHandler handles the business logic for order pickup.
// Only the assigned driver may pick up an order, and only while it is in the
// assigned status. Once picked up the order can no longer be cancelled, not
// even by the expiration sweep.
type PickupOrderCommandHandler struct {
	orders   ports.OrderRepository
	notifier ports.Notifier
}

// NewPickupOrderCommandHandler creates a handler for order pickup.
func NewPickupOrderCommandHandler(
	orders ports.OrderRepository,
	notifier ports.Notifier,
) PickupOrderCommandHandler {
	return PickupOrderCommandHandler{
		orders:   orders,
		notifier: notifier,
	}
}

// Handle processes the order pickup command.
// The status check and transition run atomically against the order store, so
// a concurrent cancellation either wins cleanly or loses cleanly.
func (h *PickupOrderCommandHandler) Handle(ctx context.Context, cmd PickupOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var customerID string
	err := h.orders.Mutate(ctx, cmd.OrderID(), func(o *order.Order) error {
		if err := o.PickUp(cmd.DriverID()); err != nil {
			return err
		}

		customerID = o.CustomerID()
		return nil
	})
	if err != nil {
		return err
	}

	h.notifier.NotifySms(ctx,
		fmt.Sprintf("+91-DRIVER-%s", cmd.DriverID()),
		fmt.Sprintf("Order %s picked up. Deliver to customer.", cmd.OrderID()),
	)
	h.notifier.NotifyEmail(ctx,
		fmt.Sprintf("%s@email.com", customerID),
		fmt.Sprintf("Order %s is on the way!", cmd.OrderID()),
	)

	return nil
}
