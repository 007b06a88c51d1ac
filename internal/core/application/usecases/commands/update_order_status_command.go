package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order assigned to the worker one step
// forward. The status name is parsed case-insensitively.
type UpdateOrderStatusCommand struct {
	workerID kernel.UUID
	orderID  kernel.UUID
	status   order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(workerID, orderID kernel.UUID, status string) (UpdateOrderStatusCommand, error) {
	parsed, statusErr := order.ParseStatus(status)
	if err := errors.Join(workerID.Validate(), orderID.Validate(), statusErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return UpdateOrderStatusCommand{
		workerID: workerID,
		orderID:  orderID,
		status:   parsed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) WorkerID() kernel.UUID { return c.workerID }
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID  { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status  { return c.status }
