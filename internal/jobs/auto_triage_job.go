package jobs

import (
	"context"
	"log/slog"

	"gruberoo/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoTriageJob runs the bulk triage sweep on a schedule: every minute it
// inspects every restaurant queue, rejecting pending orders too close to
// their delivery time and confirming the rest.
type AutoTriageJob struct {
	handler commands.BulkProcessCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutoTriageJob creates a job running the bulk-process sweep every minute.
func NewAutoTriageJob(handler commands.BulkProcessCommandHandler, logger *slog.Logger) *AutoTriageJob {
	return &AutoTriageJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "auto_triage_job"),
	}
}

// Start begins the auto-triage job.
func (j *AutoTriageJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewBulkProcessCommand(commands.DefaultTriageThreshold)
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto triage command construction failed", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Auto triage sweep failed", "error", err)
			return
		}

		if result.Inspected > 0 {
			j.logger.InfoContext(ctx, "Auto triage sweep finished",
				"inspected", result.Inspected,
				"moved_to_preparing", result.MovedToPreparing,
				"rejected", result.Rejected)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto triage job started (running every minute)")
	return nil
}

// Stop stops the auto-triage job.
func (j *AutoTriageJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto triage job stopped")
}
