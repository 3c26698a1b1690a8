package inmemory

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

var _ ports.OrderRepository = &OrderRepository{}

// OrderRepository is the in-memory implementation of ports.OrderRepository.
// It is the default store for single-process deployments and tests.
type OrderRepository struct {
	orders *collection[order.Order]
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: newCollection[order.Order]("orderId"),
	}
}

// Add persists a new order aggregate.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.orders.add(aggregate.ID(), aggregate)
}

// Get retrieves an order aggregate by ID.
func (r *OrderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	return r.orders.get(id)
}

// GetAll retrieves all orders in creation order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return r.orders.getAll(), nil
}

// GetAllUncompleted retrieves all non-terminal orders in creation order.
func (r *OrderRepository) GetAllUncompleted(_ context.Context) ([]*order.Order, error) {
	all := r.orders.getAll()

	out := make([]*order.Order, 0, len(all))
	for _, o := range all {
		if !o.Status().IsTerminal() {
			out = append(out, o)
		}
	}
	return out, nil
}

// Mutate atomically applies fn to the order with the given ID.
func (r *OrderRepository) Mutate(_ context.Context, id string, fn func(*order.Order) error) error {
	return r.orders.mutate(id, fn)
}
