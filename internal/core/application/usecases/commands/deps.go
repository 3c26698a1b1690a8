// Package commands contains the write-side use cases of the marketplace.
//
// Each use case is a pair: an immutable, constructor-validated command and a
// handler that executes it against the ports. Handlers receive their
// repositories and collaborators directly through their constructors; all
// state changes go through the repositories' atomic Mutate operations, so a
// handler never holds a stale aggregate across a write.
package commands

import "context"

// Dispatcher reacts to order and driver availability changes. It is the
// commands' view of the assignment engine: order creation offers the new
// order for immediate assignment, and freeing a driver (delivery or
// cancellation) drains the pending queue.
type Dispatcher interface {
	// AttemptAssignment tries to match the order to an available driver,
	// queueing it when none is free. Reports whether a driver was assigned.
	AttemptAssignment(ctx context.Context, orderID string) (bool, error)

	// OnDriverAvailable offers the driver to queued orders in FIFO order.
	OnDriverAvailable(ctx context.Context, driverID string) error
}
