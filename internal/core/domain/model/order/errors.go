package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for order lifecycle violations.
// Typed errors below wrap these so callers can classify failures
// with errors.Is without inspecting the details.
var (
	// ErrInvalidState is returned when a transition is attempted from a
	// status that does not allow it.
	ErrInvalidState = errors.New("invalid order state")

	// ErrNotCancellable is returned when cancellation is attempted on an
	// order that has been picked up or is already in a final state.
	ErrNotCancellable = errors.New("order is not cancellable")

	// ErrDriverNotAssigned is returned when pickup or completion is
	// attempted by a driver other than the one assigned to the order.
	ErrDriverNotAssigned = errors.New("driver is not assigned to order")
)

// InvalidStateError reports a transition attempted from the wrong status.
// It carries the attempted operation and the current vs. expected status
// so callers can render a precise failure message.
type InvalidStateError struct {
	OrderID   string
	Operation string
	Current   Status
	Expected  Status
}

func NewInvalidStateError(orderID, operation string, current, expected Status) *InvalidStateError {
	return &InvalidStateError{
		OrderID:   orderID,
		Operation: operation,
		Current:   current,
		Expected:  expected,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s order %s: status is %s, expected %s",
		ErrInvalidState, e.Operation, e.OrderID, e.Current, e.Expected)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// NotCancellableError reports a cancellation attempt on an order that is
// past the point of no return.
type NotCancellableError struct {
	OrderID string
	Current Status
}

func NewNotCancellableError(orderID string, current Status) *NotCancellableError {
	return &NotCancellableError{
		OrderID: orderID,
		Current: current,
	}
}

func (e *NotCancellableError) Error() string {
	return fmt.Sprintf("%s: order %s is %s", ErrNotCancellable, e.OrderID, e.Current)
}

func (e *NotCancellableError) Unwrap() error {
	return ErrNotCancellable
}

// DriverNotAssignedError reports a pickup or completion attempt by a driver
// who is not the one assigned to the order.
type DriverNotAssignedError struct {
	OrderID  string
	DriverID string
}

func NewDriverNotAssignedError(orderID, driverID string) *DriverNotAssignedError {
	return &DriverNotAssignedError{
		OrderID:  orderID,
		DriverID: driverID,
	}
}

func (e *DriverNotAssignedError) Error() string {
	return fmt.Sprintf("%s: driver %s is not assigned to order %s",
		ErrDriverNotAssigned, e.DriverID, e.OrderID)
}

func (e *DriverNotAssignedError) Unwrap() error {
	return ErrDriverNotAssigned
}
