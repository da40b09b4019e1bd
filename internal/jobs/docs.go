// Package jobs provides scheduled background tasks for the tailoring system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. DepositReminderJob - Runs every minute to flag orders that have been
// waiting in Placed status past the staleness threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleOrdersHandler, staleAfter, logger)
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
// The reminder job uses the cron expression "0 * * * * *" which means it runs
// at the top of every minute. Stale orders are detected with minute-level
// precision, which is well within the hours-scale staleness thresholds used
// in practice.
//
// # Error Handling
//
// - Query failures are logged and the job retries on the next tick
// - Failed job starts will stop any already running jobs
package jobs
