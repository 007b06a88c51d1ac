package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/observability"

	"github.com/robfig/cron/v3"
)

// RelayHandler publishes one batch of status history rows.
type RelayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayStatusHistoryCommand) (int, error)
}

// StatusRelayJob drains the status history outbox on a cron schedule.
type StatusRelayJob struct {
	handler  RelayHandler
	schedule string
	cmd      commands.RelayStatusHistoryCommand
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusRelayJob creates the relay job. schedule is a six-field cron
// expression with seconds.
func NewStatusRelayJob(handler RelayHandler, schedule string, batchSize int, logger *slog.Logger) (*StatusRelayJob, error) {
	cmd, err := commands.NewRelayStatusHistoryCommand(batchSize)
	if err != nil {
		return nil, err
	}
	return &StatusRelayJob{
		handler:  handler,
		schedule: schedule,
		cmd:      cmd,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "status_relay_job"),
	}, nil
}

// Start schedules the job.
func (j *StatusRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.runOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Status relay job started", "schedule", j.schedule, "batch_size", j.cmd.BatchSize())
	return nil
}

// Stop waits for a running batch to finish.
func (j *StatusRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Status relay job stopped")
}

func (j *StatusRelayJob) runOnce(ctx context.Context) int {
	published, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		observability.RelayFailuresTotal.Inc()
		j.logger.ErrorContext(ctx, "Status relay failed", "error", err)
		return 0
	}
	if published > 0 {
		observability.RelayPublishedTotal.Add(float64(published))
		j.logger.DebugContext(ctx, "Status events published", "count", published)
	}
	return published
}
