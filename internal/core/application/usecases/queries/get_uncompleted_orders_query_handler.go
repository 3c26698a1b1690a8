package queries

import (
	"context"

	"marketplace/internal/core/ports"
)

// GetUncompletedOrdersQueryHandler retrieves orders that have not reached a
// terminal status. Gives operators visibility into the active delivery
// workload.
type GetUncompletedOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetUncompletedOrdersQueryHandler creates a handler for in-flight order
// queries.
func NewGetUncompletedOrdersQueryHandler(orders ports.OrderRepository) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{orders: orders}
}

// Handle executes the query to retrieve all in-flight orders.
// Returns orders in pending, assigned or picked-up status in store order.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uncompleted, err := h.orders.GetAllUncompleted(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]GetUncompletedOrdersQueryResponse, 0, len(uncompleted))
	for _, o := range uncompleted {
		active = append(active, GetUncompletedOrdersQueryResponse{
			ID:         o.ID(),
			CustomerID: o.CustomerID(),
			Item:       o.Item().String(),
			Quantity:   o.Quantity(),
			Weight:     o.Weight(),
			Status:     o.Status().String(),
			DriverID:   o.Driver(),
		})
	}

	return active, nil
}
