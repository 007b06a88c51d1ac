package ports

import "context"

// EventPublisher delivers status events to a message broker. Publish either
// delivers every event or returns an error; partial delivery is retried by
// the relay on its next run.
type EventPublisher interface {
	Publish(ctx context.Context, events []StatusEvent) error
	Close() error
}
