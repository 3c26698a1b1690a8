package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CompleteOrderCommandHandler handles the business logic for order delivery.
// A successful delivery keeps the driver on the order record, credits the
// driver's completed-order count, frees the driver and offers them to any
// queued orders.
type CompleteOrderCommandHandler struct {
	orders     ports.OrderRepository
	drivers    ports.DriverRepository
	notifier   ports.Notifier
	dispatcher Dispatcher
}

// NewCompleteOrderCommandHandler creates a handler for order delivery.
func NewCompleteOrderCommandHandler(
	orders ports.OrderRepository,
	drivers ports.DriverRepository,
	notifier ports.Notifier,
	dispatcher Dispatcher,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		orders:     orders,
		drivers:    drivers,
		notifier:   notifier,
		dispatcher: dispatcher,
	}
}

// Handle processes the order delivery command.
// Only the assigned driver may complete an order, and only from the
// picked-up status.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.orders.Mutate(ctx, cmd.OrderID(), func(o *order.Order) error {
		return o.Complete(cmd.DriverID())
	})
	if err != nil {
		return err
	}

	err = h.drivers.Mutate(ctx, cmd.DriverID(), func(d *driver.Driver) error {
		d.MarkAvailable()
		d.IncrementOrderCount()
		return nil
	})
	if err != nil {
		return err
	}

	h.notifier.Notify(ctx,
		fmt.Sprintf("Order %s delivered successfully by Driver %s", cmd.OrderID(), cmd.DriverID()),
	)

	return h.dispatcher.OnDriverAvailable(ctx, cmd.DriverID())
}
