package jobs

import (
	"context"
	"log/slog"
	"time"

	"tracker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TransferReminderJob periodically re-notifies destination areas about
// transfers that have been pending longer than the threshold. Unanswered
// transfers freeze pieces in flight, so the nudge keeps the floor moving.
type TransferReminderJob struct {
	handler   commands.RemindPendingTransfersCommandHandler
	schedule  string
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewTransferReminderJob creates a reminder job that fires on the given cron
// schedule for transfers pending longer than olderThan.
func NewTransferReminderJob(
	handler commands.RemindPendingTransfersCommandHandler,
	schedule string,
	olderThan time.Duration,
	logger *slog.Logger,
) *TransferReminderJob {
	return &TransferReminderJob{
		handler:   handler,
		schedule:  schedule,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "transfer_reminder_job"),
	}
}

// Start schedules the reminder job.
func (j *TransferReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRemindPendingTransfersCommand(j.olderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Transfer reminder command invalid", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Transfer reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transfer reminder job started",
		"schedule", j.schedule, "older_than", j.olderThan.String())
	return nil
}

// Stop stops the reminder job.
func (j *TransferReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Transfer reminder job stopped")
}
