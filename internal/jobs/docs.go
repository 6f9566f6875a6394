// Package jobs provides scheduled background tasks for the order workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the workflow needs.
//
// # Available Jobs
//
// 1. AutoTriageJob - Runs every minute to sweep all restaurant queues,
// rejecting pending orders within an hour of their delivery time and
// confirming the rest
// 2. SnapshotJob - Runs every five minutes to save the queue and
// refund-stack snapshot files
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(bulkProcessHandler, snapshotWriter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The triage job logs sweep failures and keeps its schedule
// - The snapshot job logs save failures; the next run retries
// - Failed job starts will stop any already running jobs
package jobs
