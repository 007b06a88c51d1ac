package events

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"
)

// LogPublisher writes events to the log instead of a broker. It is used
// when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events []ports.StatusEvent) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "status event",
			"routing_key", routingKey(e),
			"subject_id", e.SubjectID.String(),
			"changed_by", e.ChangedBy.String(),
			"changed_at", e.ChangedAt,
		)
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
