package jobs

import (
	"context"
	"log/slog"

	"gruberoo/internal/adapters/out/csvstore"

	"github.com/robfig/cron/v3"
)

// SnapshotJob periodically writes the queue and refund-stack snapshot files
// so an abrupt shutdown loses at most a few minutes of workflow state.
type SnapshotJob struct {
	writer *csvstore.Writer
	cron   *cron.Cron
	logger *slog.Logger
}

// NewSnapshotJob creates a job saving snapshots every five minutes.
func NewSnapshotJob(writer *csvstore.Writer, logger *slog.Logger) *SnapshotJob {
	return &SnapshotJob{
		writer: writer,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "snapshot_job"),
	}
}

// Start begins the snapshot job.
func (j *SnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		if err := j.writer.SaveSnapshots(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Snapshot save failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started (running every five minutes)")
	return nil
}

// Stop stops the snapshot job.
func (j *SnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot job stopped")
}
