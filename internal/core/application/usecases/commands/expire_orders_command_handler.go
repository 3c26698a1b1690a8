package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ExpireOrdersCommandHandler cancels orders that stayed cancellable past the
// timeout. Each expired order goes through the regular cancellation flow, so
// held drivers are released and queued orders get their shot.
//
// The sweep tolerates races with pickups and completions: an order that
// stops being cancellable between the scan and the cancel is simply skipped.
type ExpireOrdersCommandHandler struct {
	orders ports.OrderRepository
	cancel CancelOrderCommandHandler
	logger *slog.Logger
}

// NewExpireOrdersCommandHandler creates a handler for the expiration sweep.
// Passing a nil logger falls back to slog.Default.
func NewExpireOrdersCommandHandler(
	orders ports.OrderRepository,
	cancel CancelOrderCommandHandler,
	logger *slog.Logger,
) ExpireOrdersCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return ExpireOrdersCommandHandler{
		orders: orders,
		cancel: cancel,
		logger: logger.With("component", "order-expiration"),
	}
}

// Handle runs one expiration sweep and reports how many orders it cancelled.
func (h *ExpireOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	expired := 0

	for _, o := range all {
		if !o.IsExpired(now, cmd.Timeout()) {
			continue
		}

		h.logger.InfoContext(ctx, "order expired, cancelling",
			"order_id", o.ID(),
			"timeout", cmd.Timeout(),
		)

		cancelCmd, err := NewCancelOrderCommand(o.ID())
		if err != nil {
			return expired, err
		}

		if err := h.cancel.Handle(ctx, cancelCmd); err != nil {
			if isExpirationRace(err) {
				continue
			}

			return expired, err
		}

		expired++
	}

	return expired, nil
}

// isExpirationRace reports whether the cancel failure means another actor
// resolved the order first.
func isExpirationRace(err error) bool {
	return errors.Is(err, order.ErrNotCancellable) ||
		errors.Is(err, order.ErrInvalidState) ||
		errors.Is(err, errs.ErrObjectNotFound)
}
