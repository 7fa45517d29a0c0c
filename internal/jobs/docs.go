// Package jobs provides scheduled background tasks for the jewelry back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DegradedNumbersAuditJob - Runs hourly to list order numbers minted by the
// timestamp fallback so operators can reconcile them
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(degradedNumbersHandler, logger)
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
// - The audit job logs query failures and keeps running on its schedule
// - Failed job starts abort application startup
package jobs
