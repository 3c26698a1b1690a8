package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"marketplace/internal/core/application/usecases/commands"
)

// OrderExpirationJob periodically cancels orders stuck in a cancellable
// status past the configured timeout.
type OrderExpirationJob struct {
	handler  commands.ExpireOrdersCommandHandler
	timeout  time.Duration
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderExpirationJob creates the expiration sweep job.
// timeout is the age after which cancellable orders expire; interval is the
// sweep frequency.
func NewOrderExpirationJob(
	handler commands.ExpireOrdersCommandHandler,
	timeout, interval time.Duration,
	logger *slog.Logger,
) *OrderExpirationJob {
	return &OrderExpirationJob{
		handler:  handler,
		timeout:  timeout,
		interval: interval,
		cron:     cron.New(),
		logger:   logger.With("component", "order_expiration_job"),
	}
}

// Start schedules the expiration sweep at the configured interval.
func (j *OrderExpirationJob) Start() error {
	cmd, err := commands.NewExpireOrdersCommand(j.timeout)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		expired, sweepErr := j.handler.Handle(ctx, cmd)
		if sweepErr != nil {
			j.logger.ErrorContext(ctx, "Order expiration sweep failed", "error", sweepErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Order expiration sweep finished", "expired", expired)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Order expiration job started",
		"timeout", j.timeout,
		"interval", j.interval,
	)
	return nil
}

// Stop halts scheduling and waits for an in-flight sweep to finish.
func (j *OrderExpirationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order expiration job stopped")
}
