// Package jobs provides scheduled background tasks for the distribution
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order and invoice processing.
//
// # Available Jobs
//
// 1. InvoiceOverdueJob - Periodically flips unpaid invoices past their due
// date to overdue, so the credit report reflects real exposure.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(markOverdueHandler, schedule, logger)
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
// The overdue sweep schedule comes from configuration; the default
// "0 0 * * * *" runs it at the top of every hour. Due dates have day
// granularity, so an hourly sweep keeps the report fresh enough.
package jobs
