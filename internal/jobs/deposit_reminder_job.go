package jobs

import (
	"context"
	"log/slog"
	"time"

	"tailoring/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DepositReminderJob periodically scans for orders that have been sitting in
// Placed status past the staleness threshold and logs a reminder for each one.
// Runs every minute.
type DepositReminderJob struct {
	handler    queries.ListStalePlacedOrdersQueryHandler
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDepositReminderJob creates a new job for reminding tailors about
// undecided orders. Uses ListStalePlacedOrdersQueryHandler to find the stale
// ones every minute.
func NewDepositReminderJob(
	handler queries.ListStalePlacedOrdersQueryHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *DepositReminderJob {
	return &DepositReminderJob{
		handler:    handler,
		staleAfter: staleAfter,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "deposit_reminder_job"),
	}
}

// Start begins the deposit reminder job to run every minute.
func (j *DepositReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewListStalePlacedOrdersQuery(j.staleAfter)
		if err != nil {
			j.logger.ErrorContext(ctx, "Deposit reminder job misconfigured", "error", err)
			return
		}

		stale, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Deposit reminder job failed", "error", err)
			return
		}

		for _, entry := range stale {
			j.logger.WarnContext(ctx, "Order awaiting tailor decision past threshold",
				"orderId", entry.ID.String(),
				"tailorId", entry.TailorID.String(),
				"placedAt", entry.CreatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deposit reminder job started (running every minute)")
	return nil
}

// Stop stops the deposit reminder job.
func (j *DepositReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deposit reminder job stopped")
}
