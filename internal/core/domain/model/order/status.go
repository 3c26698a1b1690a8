package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Once an order is picked up it can no longer be cancelled; Delivered and
// Cancelled are final states with no outgoing transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be matched to a driver.
	Pending

	// Assigned indicates the order has been matched to a driver
	// who has not yet picked it up.
	Assigned

	// PickedUp indicates the assigned driver has collected the order.
	// From this point on the order can never be cancelled.
	PickedUp

	// Delivered indicates the order has been successfully delivered.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before pickup,
	// either by a caller or by the expiration sweep.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, PickedUp, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name back into a Status value.
// It is the inverse of String for all valid statuses and is used when
// restoring orders from persistence or parsing API input.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// IsTerminal reports whether the status is final.
// Delivered and Cancelled orders accept no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsCancellable reports whether an order in this status may still be cancelled.
//
// Only Pending and Assigned orders are cancellable. Once the driver has
// picked the order up, cancellation is permanently ruled out.
func (s Status) IsCancellable() bool {
	return s == Pending || s == Assigned
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment.
//
// Business Rules:
//   - Pending and Cancelled orders must not have a driver assigned
//   - Assigned, PickedUp and Delivered orders must have a driver assigned
//
// Parameters:
//   - driver: whether the order has a driver assigned
//
// Returns:
//   - error: validation error if status and driver assignment are inconsistent
func (s Status) ValidateCanHaveDriver(driver bool) error {
	requiresDriver := s == Assigned || s == PickedUp || s == Delivered

	if driver && !requiresDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !driver && requiresDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}
