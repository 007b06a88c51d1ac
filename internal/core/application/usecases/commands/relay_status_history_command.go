package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRelayStatusHistoryCommandIsNotConstructed = errors.New(
	"RelayStatusHistoryCommand must be created via NewRelayStatusHistoryCommand constructor",
)

// RelayStatusHistoryCommand publishes up to batchSize unpublished status
// history rows.
type RelayStatusHistoryCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayStatusHistoryCommand(batchSize int) (RelayStatusHistoryCommand, error) {
	if batchSize <= 0 {
		return RelayStatusHistoryCommand{}, errs.NewValueIsOutOfRangeError("batch_size", batchSize, 1, "unbounded")
	}
	return RelayStatusHistoryCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelayStatusHistoryCommand) Validate() error {
	return c.guard.Validate(ErrRelayStatusHistoryCommandIsNotConstructed)
}

func (c RelayStatusHistoryCommand) BatchSize() int { return c.batchSize }
