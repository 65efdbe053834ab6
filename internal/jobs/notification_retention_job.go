package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRetentionSchedule runs the purge once an hour.
const DefaultRetentionSchedule = "@every 1h"

// NotificationPurger is satisfied by *commands.PurgeReadNotificationsCommandHandler.
type NotificationPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeReadNotificationsCommand) (int64, error)
}

// PurgeCounter receives the number of removed notifications.
type PurgeCounter interface {
	NotificationsPurged(n int64)
}

// NotificationRetentionJob deletes read notifications older than the retention period.
type NotificationRetentionJob struct {
	purger    NotificationPurger
	retention time.Duration
	schedule  string
	counter   PurgeCounter
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationRetentionJob creates the job. An empty schedule means DefaultRetentionSchedule.
func NewNotificationRetentionJob(
	purger NotificationPurger,
	retention time.Duration,
	schedule string,
	counter PurgeCounter,
	logger *slog.Logger,
) *NotificationRetentionJob {
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}
	return &NotificationRetentionJob{
		purger:    purger,
		retention: retention,
		schedule:  schedule,
		counter:   counter,
		cron:      cron.New(),
		logger:    logger.With("component", "notification_retention_job"),
	}
}

// Start schedules the purge. The command is validated up front so a bad
// retention fails at startup instead of on every tick.
func (j *NotificationRetentionJob) Start() error {
	if _, err := commands.NewPurgeReadNotificationsCommand(j.retention); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retention job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// RunOnce performs a single purge and logs the outcome.
func (j *NotificationRetentionJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewPurgeReadNotificationsCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification retention job misconfigured", "error", err)
		return
	}

	deleted, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification retention job failed", "error", err)
		return
	}

	if j.counter != nil {
		j.counter.NotificationsPurged(deleted)
	}
	if deleted > 0 {
		j.logger.InfoContext(ctx, "Read notifications purged", "deleted", deleted)
	}
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *NotificationRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification retention job stopped")
}
