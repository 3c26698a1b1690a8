package queries

import (
	"context"
	"slices"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/ports"
)

// GetTopDriversQueryHandler builds the driver leaderboard.
// Reads through the driver repository so the same handler serves both the
// in-memory and the database-backed store.
type GetTopDriversQueryHandler struct {
	drivers ports.DriverRepository
}

// NewGetTopDriversQueryHandler creates a handler for leaderboard queries.
func NewGetTopDriversQueryHandler(drivers ports.DriverRepository) GetTopDriversQueryHandler {
	return GetTopDriversQueryHandler{drivers: drivers}
}

// Handle executes the leaderboard query.
// Drivers are ranked by the requested criterion in descending order; ties
// keep their store order. Returns at most Limit entries.
func (h GetTopDriversQueryHandler) Handle(
	ctx context.Context,
	query GetTopDriversQuery,
) ([]GetTopDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.drivers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(all, func(a, b *driver.Driver) int {
		switch query.SortBy() {
		case SortByOrderCount:
			return b.OrderCount() - a.OrderCount()
		case SortByRating:
			fallthrough
		default:
			switch {
			case b.Rating() > a.Rating():
				return 1
			case b.Rating() < a.Rating():
				return -1
			default:
				return 0
			}
		}
	})

	if len(all) > query.Limit() {
		all = all[:query.Limit()]
	}

	top := make([]GetTopDriversQueryResponse, 0, len(all))
	for _, d := range all {
		top = append(top, GetTopDriversQueryResponse{
			ID:         d.ID(),
			Name:       d.Name(),
			Status:     d.Status().String(),
			Rating:     d.Rating(),
			OrderCount: d.OrderCount(),
		})
	}

	return top, nil
}
