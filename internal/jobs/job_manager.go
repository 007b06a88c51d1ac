package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	statusRelayJob *StatusRelayJob
}

// NewJobManager wires the background jobs. The relay runs on schedule and
// publishes at most batchSize events per run.
func NewJobManager(relay RelayHandler, schedule string, batchSize int, logger *slog.Logger) (*JobManager, error) {
	relayJob, err := NewStatusRelayJob(relay, schedule, batchSize, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create status relay job: %w", err)
	}
	return &JobManager{statusRelayJob: relayJob}, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.statusRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start status relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusRelayJob.Stop()
}
