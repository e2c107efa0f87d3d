package jobs

import (
	"context"
	"time"

	"dawati-backend/internal/config"
	"dawati-backend/internal/logger"
	"dawati-backend/internal/repository/postgres"
	"dawati-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store    *postgres.Store
	eventSvc service.EventService
	emailSvc service.EmailService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, eventSvc service.EventService, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		eventSvc: eventSvc,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
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

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkPastEventsDone()
	jr.CleanupExpiredCardAssets()
	jr.SendOutreachReminders()
}

// CleanupExpiredCardAssets drops card asset records whose upload was
// never confirmed. Two days is generous; presigned URLs expire in
// minutes.
func (jr *JobRunner) CleanupExpiredCardAssets() {
	jr.runWithRecovery("CleanupExpiredCardAssets", func() {
		cutoff := time.Now().UTC().AddDate(0, 0, -2).Format("2006-01-02")
		if err := jr.store.CardAssetRepository.DeleteExpiredPending(context.Background(), cutoff); err != nil {
			logger.Error("CleanupExpiredCardAssets failed", "error", err)
		}
	})
}

// MarkPastEventsDone flips events whose date has passed to DONE.
func (jr *JobRunner) MarkPastEventsDone() {
	jr.runWithRecovery("MarkPastEventsDone", func() {
		done, err := jr.eventSvc.MarkPastEventsDone(context.Background())
		if err != nil {
			logger.Error("MarkPastEventsDone failed", "error", err)
			return
		}
		logger.Info("Marked past events done", "count", done)
	})
}
