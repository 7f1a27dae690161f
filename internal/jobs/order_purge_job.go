package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// purgeHandler is the slice of the command layer this job needs.
type purgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeDeletedOrdersCommand) (int64, error)
}

// OrderPurgeJob physically removes soft-deleted orders once their retention
// window has elapsed. Until this job runs, a deleted order stays in storage
// hidden from every read path.
type OrderPurgeJob struct {
	handler   purgeHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderPurgeJob creates a purge job. Schedule is a six-field cron
// expression; retention is how long soft-deleted rows are kept before
// becoming purgeable.
func NewOrderPurgeJob(handler purgeHandler, schedule string, retention time.Duration, logger *slog.Logger) *OrderPurgeJob {
	return &OrderPurgeJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "order_purge_job"),
	}
}

// Start begins the purge job on its configured schedule.
func (j *OrderPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order purge job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Stop stops the purge job.
func (j *OrderPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order purge job stopped")
}

func (j *OrderPurgeJob) runOnce() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.retention)

	cmd, err := commands.NewPurgeDeletedOrdersCommand(cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order purge job misconfigured", "error", err)
		return
	}

	purged, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order purge job failed", "error", err)
		return
	}

	if purged > 0 {
		j.logger.InfoContext(ctx, "Purged soft-deleted orders", "count", purged)
	}
}
