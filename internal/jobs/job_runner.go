package jobs

import (
	"context"

	"jobi-backend/internal/config"
	"jobi-backend/internal/logger"
	"jobi-backend/internal/service"
)

// JobRunner coordinates the scheduled broadcasts.
type JobRunner struct {
	dispatcher service.NotificationDispatcher
	config     *config.Config
}

func NewJobRunner(dispatcher service.NotificationDispatcher, cfg *config.Config) *JobRunner {
	return &JobRunner{
		dispatcher: dispatcher,
		config:     cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// SendTeaserReminders re-sends the pre-launch teaser to every registration
// with an email address.
func (jr *JobRunner) SendTeaserReminders() {
	jr.runWithRecovery("send-teaser-reminders", func() {
		report, err := jr.dispatcher.SendTeaserBroadcast(context.Background())
		if err != nil {
			logger.Error("teaser broadcast failed", "error", err)
			return
		}
		logger.Info("teaser broadcast finished",
			"run_id", report.RunID,
			"cohort_size", report.CohortSize,
			"sent", report.SuccessCount,
			"failures", len(report.Errors),
		)
	})
}
