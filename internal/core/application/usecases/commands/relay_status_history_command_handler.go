package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// RelayStatusHistoryCommandHandler is the outbox relay. Outbox entries are
// read and locked, published, then marked published in the same
// transaction. A publish failure rolls back and the entries are picked up by
// the next run, so consumers may see an event more than once.
type RelayStatusHistoryCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	clock      kernel.Clock
}

func NewRelayStatusHistoryCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	clock kernel.Clock,
) RelayStatusHistoryCommandHandler {
	return RelayStatusHistoryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle returns the number of published events.
func (h RelayStatusHistoryCommandHandler) Handle(ctx context.Context, cmd RelayStatusHistoryCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	historyRepo := uow.HistoryRepository()
	events, err := historyRepo.ListUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, events); err != nil {
		return 0, err
	}

	if err = historyRepo.MarkPublished(ctx, events, h.clock.Now()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(events), nil
}
