package driver

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the availability of a driver.
//
// A driver is either Available for matching or Busy holding exactly one
// non-terminal order. The Assignment Engine flips drivers to Busy on
// assignment; completing or cancelling the held order flips them back.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the driver can be matched to a pending order.
	Available

	// Busy means the driver is currently holding one non-terminal order.
	Busy
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Busy:      "Busy",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Busy:      "Busy",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Available and Busy; Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface; safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name back into a Status value.
// It is the inverse of String for all valid statuses.
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
