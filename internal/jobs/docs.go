// Package jobs provides scheduled background tasks for the fulfillment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationRetentionJob - Runs every hour by default and deletes read
// notifications older than the configured retention.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, jobs.RetentionConfig{Retention: 720 * time.Hour}, m, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed purge is logged and retried on the next tick. A non-positive
// retention or an invalid schedule fails StartAll.
package jobs
