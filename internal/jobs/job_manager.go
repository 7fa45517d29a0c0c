package jobs

import (
	"fmt"
	"log/slog"

	"jewelry/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	degradedNumbersAuditJob *DegradedNumbersAuditJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	degradedNumbersHandler queries.GetDegradedOrderNumbersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		degradedNumbersAuditJob: NewDegradedNumbersAuditJob(degradedNumbersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.degradedNumbersAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start degraded order number audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.degradedNumbersAuditJob.Stop()
}
