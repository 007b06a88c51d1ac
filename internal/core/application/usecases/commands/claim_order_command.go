package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand lets a worker take an unclaimed order.
type ClaimOrderCommand struct {
	workerID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimOrderCommand(workerID, orderID kernel.UUID) (ClaimOrderCommand, error) {
	if err := errors.Join(workerID.Validate(), orderID.Validate()); err != nil {
		return ClaimOrderCommand{}, err
	}
	return ClaimOrderCommand{
		workerID: workerID,
		orderID:  orderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

func (c ClaimOrderCommand) WorkerID() kernel.UUID { return c.workerID }
func (c ClaimOrderCommand) OrderID() kernel.UUID  { return c.orderID }
