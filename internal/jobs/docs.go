// Package jobs provides background tasks for the bakery service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// DemoDataJob seeds the store with the demo dataset once at startup and,
// when a schedule is configured, again on that schedule. A store that already
// holds users is left untouched, so the scheduled runs only act after the
// store was emptied.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(logger, demoDataJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax or a descriptor such as
// "@daily". Overlapping runs are skipped.
//
// # Error Handling
//
//   - An already seeded store is logged at info level and is not a failure
//   - Every other error is logged and counted as a failed run
//   - Failed job starts will stop any already running jobs
package jobs
