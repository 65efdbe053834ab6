package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationRetentionJob *NotificationRetentionJob
}

// RetentionConfig configures the notification retention job.
type RetentionConfig struct {
	Retention time.Duration
	Schedule  string
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	purger NotificationPurger,
	retention RetentionConfig,
	counter PurgeCounter,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationRetentionJob: NewNotificationRetentionJob(
			purger, retention.Retention, retention.Schedule, counter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRetentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRetentionJob.Stop()
}
