// Package jobs provides scheduled background tasks for the tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. TransferReminderJob - Periodically re-notifies destination areas about
// transfers that have been pending longer than the configured threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindHandler, "0 9 * * *", 24*time.Hour, logger)
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
// The reminder schedule is a standard five-field cron expression taken from
// configuration. The default "0 9 * * *" fires every morning at nine.
//
// # Error Handling
//
// Reminder failures are logged and retried on the next tick; a missed
// reminder never blocks the transfer protocol itself.
package jobs
