package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"tailoring/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	depositReminderJob *DepositReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	staleOrdersHandler queries.ListStalePlacedOrdersQueryHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		depositReminderJob: NewDepositReminderJob(staleOrdersHandler, staleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.depositReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start deposit reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.depositReminderJob.Stop()
}
