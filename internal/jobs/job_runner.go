package jobs

import (
	"farmforce-backend/internal/config"
	"farmforce-backend/internal/logger"
	"farmforce-backend/internal/repository"
	"farmforce-backend/internal/trigger"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	txRepo  repository.TransactionRepository
	handler trigger.Handler
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(txRepo repository.TransactionRepository, handler trigger.Handler, cfg *config.Config) *JobRunner {
	return &JobRunner{
		txRepo:  txRepo,
		handler: handler,
		config:  cfg,
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
