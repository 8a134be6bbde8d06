package jobs

import (
	"context"
	"log/slog"
)

// Job is a background task with an explicit lifecycle.
type Job interface {
	Start() error
	Stop()
}

// JobManager starts and stops a set of jobs together.
type JobManager struct {
	jobs    []Job
	started []Job
	logger  *slog.Logger
}

func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{
		jobs:   jobs,
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts the jobs in order. If one fails, the ones already running
// are stopped and the error is returned.
func (m *JobManager) StartAll() error {
	for _, job := range m.jobs {
		if err := job.Start(); err != nil {
			m.logger.ErrorContext(context.Background(), "Failed to start job", "error", err)
			m.StopAll()
			return err
		}
		m.started = append(m.started, job)
	}
	m.logger.InfoContext(context.Background(), "All jobs started", "count", len(m.started))
	return nil
}

// StopAll stops the running jobs in reverse start order.
func (m *JobManager) StopAll() {
	for i := len(m.started) - 1; i >= 0; i-- {
		m.started[i].Stop()
	}
	m.started = nil
}
