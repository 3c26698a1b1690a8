package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderExpirationJob *OrderExpirationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireOrdersHandler commands.ExpireOrdersCommandHandler,
	orderTimeout, sweepInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderExpirationJob: NewOrderExpirationJob(expireOrdersHandler, orderTimeout, sweepInterval, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start order expiration job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderExpirationJob.Stop()
}
