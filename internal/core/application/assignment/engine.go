package assignment

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// errOrderResolved signals inside an order mutation that the order left
// Pending status between the matching read and the write. The engine rolls
// the reserved driver back and treats the attempt as a no-op.
var errOrderResolved = errors.New("order already resolved")

// outcome classifies a single assignment attempt.
type outcome int

const (
	// outcomeAssigned means a driver was reserved and the order assigned.
	outcomeAssigned outcome = iota
	// outcomeResolved means the order no longer needs a driver (missing,
	// cancelled, or already assigned). The attempt is a silent no-op.
	outcomeResolved
	// outcomeNoDriver means the order is still Pending but no driver
	// qualifies right now.
	outcomeNoDriver
)

// Engine matches pending orders to available drivers and owns the FIFO
// queue of orders waiting for one.
//
// A single mutex guards the queue and the whole read-match-write sequence of
// an attempt, so "check order is Pending, pick a driver, mark driver Busy,
// mark order Assigned" is atomic with respect to other attempts. Entity
// stores carry their own locks; acquisition order is always engine lock,
// then driver store, then order store.
//
// Key behaviors:
//   - An order that cannot be matched at creation is queued exactly once
//   - Queue draining is strictly FIFO; entries whose order left Pending
//     status are dropped silently and never block the queue
//   - A drain stops at the first entry that is still Pending but
//     unmatchable, pushing it back to the queue head so it keeps its place
type Engine struct {
	mu sync.Mutex
	// queue holds IDs of pending orders in creation order, no duplicates
	queue []string

	orders  ports.OrderRepository
	drivers ports.DriverRepository
	policy  services.MatchingPolicy
	logger  *slog.Logger
}

// NewEngine creates an assignment engine over the given stores and
// matching policy.
func NewEngine(
	orders ports.OrderRepository,
	drivers ports.DriverRepository,
	policy services.MatchingPolicy,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		orders:  orders,
		drivers: drivers,
		policy:  policy,
		logger:  logger.With("component", "assignment-engine"),
	}
}

// AttemptAssignment tries to match the order with the given ID to an
// available driver.
//
// If the order is no longer Pending (cancelled, already assigned, or
// unknown) the attempt is a no-op returning false. If no driver qualifies,
// the order is appended to the pending queue (once) and false is returned.
// On success the chosen driver is Busy, the order Assigned, and true is
// returned.
func (e *Engine) AttemptAssignment(ctx context.Context, orderID string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	result, err := e.attemptLocked(ctx, orderID)
	if err != nil {
		return false, err
	}

	if result == outcomeNoDriver {
		e.enqueueLocked(orderID)
	}

	return result == outcomeAssigned, nil
}

// OnDriverAvailable drains the pending queue after a driver freed up.
//
// Entries are tried in FIFO order. Orders that left Pending status while
// queued are dropped and the drain continues; the first entry that is still
// Pending but cannot be matched is pushed back to the queue head and the
// drain stops. At most one order is assigned per call.
func (e *Engine) OnDriverAvailable(ctx context.Context, driverID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for len(e.queue) > 0 {
		orderID := e.queue[0]
		e.queue = e.queue[1:]

		result, err := e.attemptLocked(ctx, orderID)
		if err != nil {
			// Infrastructure failure: the order keeps its place.
			e.queue = append([]string{orderID}, e.queue...)
			return err
		}

		switch result {
		case outcomeAssigned:
			return nil
		case outcomeResolved:
			// Cancelled or otherwise resolved while queued; drop and go on.
			continue
		case outcomeNoDriver:
			// Still pending but unmatchable even though driverID just freed
			// up (another attempt won the driver). Head keeps its place.
			e.queue = append([]string{orderID}, e.queue...)
			e.logger.DebugContext(ctx, "queue drain stopped, no driver available",
				"order_id", orderID, "freed_driver_id", driverID)
			return nil
		}
	}

	return nil
}

// QueuedOrders returns a snapshot of the pending queue in FIFO order.
func (e *Engine) QueuedOrders() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.queue)
}

// attemptLocked runs one assignment attempt. The caller must hold e.mu.
func (e *Engine) attemptLocked(ctx context.Context, orderID string) (outcome, error) {
	o, err := e.orders.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return outcomeResolved, nil
		}
		return outcomeNoDriver, err
	}

	if o.Status() != order.Pending {
		return outcomeResolved, nil
	}

	allDrivers, err := e.drivers.GetAll(ctx)
	if err != nil {
		return outcomeNoDriver, err
	}

	selected := e.policy.FindDriver(allDrivers)
	if selected == nil {
		return outcomeNoDriver, nil
	}

	driverID := selected.ID()
	if err := e.drivers.Mutate(ctx, driverID, func(d *driver.Driver) error {
		return d.MarkBusy()
	}); err != nil {
		return outcomeNoDriver, err
	}

	err = e.orders.Mutate(ctx, orderID, func(o *order.Order) error {
		if o.Status() != order.Pending {
			return errOrderResolved
		}
		return o.Assign(driverID)
	})
	if err != nil {
		// The order was resolved between the read and the write (e.g. a
		// concurrent cancel). Release the reserved driver.
		_ = e.drivers.Mutate(ctx, driverID, func(d *driver.Driver) error {
			d.MarkAvailable()
			return nil
		})

		if errors.Is(err, errOrderResolved) || errors.Is(err, errs.ErrObjectNotFound) {
			return outcomeResolved, nil
		}
		return outcomeNoDriver, err
	}

	e.logger.InfoContext(ctx, "order assigned",
		"order_id", orderID, "driver_id", driverID)
	return outcomeAssigned, nil
}

// enqueueLocked appends orderID to the queue unless already present.
// The caller must hold e.mu.
func (e *Engine) enqueueLocked(orderID string) {
	if slices.Contains(e.queue, orderID) {
		return
	}

	e.queue = append(e.queue, orderID)
	e.logger.Debug("order queued, no drivers available", "order_id", orderID)
}
