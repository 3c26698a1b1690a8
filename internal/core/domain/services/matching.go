package services

import (
	"marketplace/internal/core/domain/model/driver"
)

// MatchingPolicy is a domain service that selects one available driver for a
// pending order from the current driver list.
//
// Policies are pure: they never mutate drivers and never touch shared state.
// The Assignment Engine owns the atomicity of the surrounding
// read-match-write sequence; a policy only answers "which driver, if any".
//
// Key business rules:
//   - Only Available drivers may be selected
//   - A nil result means no driver can be matched right now
type MatchingPolicy interface {
	// FindDriver returns one available driver from the list, or nil if none
	// qualifies. Implementations must not mutate the drivers.
	FindDriver(drivers []*driver.Driver) *driver.Driver
}

// FirstAvailablePolicy selects the first available driver in insertion order.
// The stable scan makes assignment deterministic, which keeps FIFO fairness
// observable in tests.
type FirstAvailablePolicy struct{}

// NewFirstAvailablePolicy creates a new FirstAvailablePolicy instance.
func NewFirstAvailablePolicy() FirstAvailablePolicy {
	return FirstAvailablePolicy{}
}

// FindDriver returns the first driver whose status is Available, or nil.
func (FirstAvailablePolicy) FindDriver(drivers []*driver.Driver) *driver.Driver {
	for _, d := range drivers {
		if d.IsAvailable() {
			return d
		}
	}
	return nil
}

// BestRatedPolicy selects the available driver with the highest running
// average rating. Ties are broken by first-seen order, so among equally rated
// drivers the earlier-listed one wins.
type BestRatedPolicy struct{}

// NewBestRatedPolicy creates a new BestRatedPolicy instance.
func NewBestRatedPolicy() BestRatedPolicy {
	return BestRatedPolicy{}
}

// FindDriver returns the highest-rated available driver, or nil if none
// is available.
func (BestRatedPolicy) FindDriver(drivers []*driver.Driver) *driver.Driver {
	var (
		best       *driver.Driver
		bestRating float64
	)

	for _, d := range drivers {
		if !d.IsAvailable() {
			continue
		}

		if best == nil || d.Rating() > bestRating {
			best = d
			bestRating = d.Rating()
		}
	}

	return best
}
