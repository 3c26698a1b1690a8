// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance required for the order lifecycle.
//
// # Available Jobs
//
// 1. OrderExpirationJob - Periodically cancels orders that stayed cancellable past the timeout
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireOrdersHandler, orderTimeout, sweepInterval, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiration job uses an "@every" cron expression derived from the
// configured sweep interval. Stopping the manager waits for an in-flight
// sweep to complete, so shutdown never tears the store out from under a
// running cancellation.
//
// # Error Handling
//
// The sweep swallows per-order races (an order picked up or resolved between
// the scan and the cancel); anything else is logged and retried on the next
// tick.
package jobs
