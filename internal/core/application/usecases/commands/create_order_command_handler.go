package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// A new order starts pending and is immediately offered to the assignment
// engine, which either matches it to an available driver or queues it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(customers, orders, notifier, engine)
//	cmd, _ := NewCreateOrderCommand("ORD-1", "CUST-1", order.ItemFood, 1, 0.5)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now placed; a driver may already be assigned.
type CreateOrderCommandHandler struct {
	customers  ports.CustomerRepository
	orders     ports.OrderRepository
	notifier   ports.Notifier
	dispatcher Dispatcher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	customers ports.CustomerRepository,
	orders ports.OrderRepository,
	notifier ports.Notifier,
	dispatcher Dispatcher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		customers:  customers,
		orders:     orders,
		notifier:   notifier,
		dispatcher: dispatcher,
	}
}

// Handle processes the order placement command.
// Rejects orders for unknown customers and duplicate order IDs, notifies the
// customer, then offers the order for driver assignment.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.customers.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Item(), cmd.Quantity(), cmd.Weight())
	if err != nil {
		return err
	}

	if err = h.orders.Add(ctx, o); err != nil {
		return err
	}

	h.notifier.NotifyEmail(ctx,
		fmt.Sprintf("%s@email.com", cmd.CustomerID()),
		fmt.Sprintf("Order %s placed successfully.", cmd.OrderID()),
	)

	_, err = h.dispatcher.AttemptAssignment(ctx, cmd.OrderID())
	return err
}
