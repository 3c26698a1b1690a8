package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves all orders still in flight.
// Returns orders in pending, assigned or picked-up status for monitoring.
//
// Example:
//
//	query := NewGetUncompletedOrdersQuery()
//	handler := NewGetUncompletedOrdersQueryHandler(orders)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders in flight\n", len(active))
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to retrieve in-flight orders.
// This is a parameterless query that fetches all non-terminal orders.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncompletedOrdersQueryIsNotConstructed if validation fails.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersQueryResponse represents one in-flight order.
type GetUncompletedOrdersQueryResponse struct {
	ID         string
	CustomerID string
	Item       string
	Quantity   int
	Weight     float64
	Status     string
	DriverID   *string
}
