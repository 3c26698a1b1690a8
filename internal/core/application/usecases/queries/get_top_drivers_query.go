// Package queries contains read operations for retrieving marketplace state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetTopDriversQueryIsNotConstructed = errors.New(
	"GetTopDriversQuery must be created via NewGetTopDriversQuery constructor",
)

// DefaultTopDriversLimit is used by callers that do not ask for a specific
// leaderboard size.
const DefaultTopDriversLimit = 5

// TopDriversSortBy selects the leaderboard ranking criterion.
type TopDriversSortBy int

const (
	// SortByRating ranks drivers by their average rating.
	SortByRating TopDriversSortBy = iota
	// SortByOrderCount ranks drivers by completed deliveries.
	SortByOrderCount
)

// TopDriversSortByFromString parses a ranking criterion name.
// "rating" ranks by average rating, "orders" by completed deliveries.
func TopDriversSortByFromString(value string) (TopDriversSortBy, error) {
	switch value {
	case "rating":
		return SortByRating, nil
	case "orders":
		return SortByOrderCount, nil
	default:
		return SortByRating, errs.NewValueIsInvalidError("sortBy")
	}
}

// GetTopDriversQuery retrieves the driver leaderboard for the dashboard.
//
// Example:
//
//	query, _ := NewGetTopDriversQuery(5, SortByRating)
//	handler := NewGetTopDriversQueryHandler(drivers)
//
//	top, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve top drivers: %w", err)
//	}
//
//	for _, d := range top {
//	    fmt.Printf("%s rated %.1f over %d deliveries\n", d.Name, d.Rating, d.OrderCount)
//	}
type GetTopDriversQuery struct { //nolint:recvcheck //using for validation
	limit  int
	sortBy TopDriversSortBy

	guard guard.ConstructorGuard
}

// NewGetTopDriversQuery creates a query for the driver leaderboard.
// Returns an error if the limit is not positive or the criterion is unknown.
func NewGetTopDriversQuery(limit int, sortBy TopDriversSortBy) (GetTopDriversQuery, error) {
	q := GetTopDriversQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setLimit(limit),
		q.setSortBy(sortBy),
	); err != nil {
		return GetTopDriversQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTopDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetTopDriversQueryIsNotConstructed)
}

// Limit returns the maximum leaderboard size.
func (q GetTopDriversQuery) Limit() int {
	return q.limit
}

// SortBy returns the ranking criterion.
func (q GetTopDriversQuery) SortBy() TopDriversSortBy {
	return q.sortBy
}

func (q *GetTopDriversQuery) setLimit(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsInvalidError("limit")
	}

	q.limit = limit
	return nil
}

func (q *GetTopDriversQuery) setSortBy(sortBy TopDriversSortBy) error {
	if sortBy != SortByRating && sortBy != SortByOrderCount {
		return errs.NewValueIsInvalidError("sortBy")
	}

	q.sortBy = sortBy
	return nil
}

// GetTopDriversQueryResponse represents one leaderboard entry.
type GetTopDriversQueryResponse struct {
	ID         string
	Name       string
	Status     string
	Rating     float64
	OrderCount int
}
