package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Pending and assigned orders can be cancelled; a picked-up order is past the
// point of no return. Cancelling an assigned order releases its driver back
// to the available pool and offers them to queued orders.
type CancelOrderCommandHandler struct {
	orders     ports.OrderRepository
	drivers    ports.DriverRepository
	notifier   ports.Notifier
	dispatcher Dispatcher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	orders ports.OrderRepository,
	drivers ports.DriverRepository,
	notifier ports.Notifier,
	dispatcher Dispatcher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orders:     orders,
		drivers:    drivers,
		notifier:   notifier,
		dispatcher: dispatcher,
	}
}

// Handle processes the order cancellation command.
// The cancellability check and the transition run atomically against the
// order store: a cancel racing a pickup cannot strand the order in between.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var releasedDriverID *string
	err := h.orders.Mutate(ctx, cmd.OrderID(), func(o *order.Order) error {
		releasedDriverID = o.Driver()
		return o.Cancel()
	})
	if err != nil {
		return err
	}

	h.notifier.Notify(ctx, fmt.Sprintf("Order %s has been cancelled.", cmd.OrderID()))

	if releasedDriverID == nil {
		return nil
	}

	err = h.drivers.Mutate(ctx, *releasedDriverID, func(d *driver.Driver) error {
		d.MarkAvailable()
		return nil
	})
	if err != nil {
		return err
	}

	h.notifier.Notify(ctx,
		fmt.Sprintf("Driver %s is now available due to order cancellation.", *releasedDriverID),
	)

	return h.dispatcher.OnDriverAvailable(ctx, *releasedDriverID)
}
