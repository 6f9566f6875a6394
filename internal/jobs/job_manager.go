package jobs

import (
	"fmt"
	"log/slog"

	"gruberoo/internal/adapters/out/csvstore"
	"gruberoo/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoTriageJob *AutoTriageJob
	snapshotJob   *SnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the bulk-process handler and the snapshot writer as dependencies.
func NewJobManager(
	bulkProcessHandler commands.BulkProcessCommandHandler,
	snapshotWriter *csvstore.Writer,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoTriageJob: NewAutoTriageJob(bulkProcessHandler, logger),
		snapshotJob:   NewSnapshotJob(snapshotWriter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.autoTriageJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto triage job: %w", err)
	}

	if err := jm.snapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.autoTriageJob.Stop()
		return fmt.Errorf("failed to start snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotJob.Stop()
	jm.autoTriageJob.Stop()
}
