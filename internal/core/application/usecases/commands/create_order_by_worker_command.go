package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderByWorkerCommandIsNotConstructed = errors.New(
	"CreateOrderByWorkerCommand must be created via NewCreateOrderByWorkerCommand constructor",
)

// CreateOrderByWorkerCommand places an order on behalf of a customer assigned
// to the worker. The address is resolved from the customer's address book.
type CreateOrderByWorkerCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	workerID     kernel.UUID
	customerID   kernel.UUID
	pickupTime   time.Time
	deliveryTime time.Time
	price        float64

	guard guard.ConstructorGuard
}

func NewCreateOrderByWorkerCommand(
	orderID, workerID, customerID kernel.UUID,
	pickupTime, deliveryTime time.Time,
	price float64,
) (CreateOrderByWorkerCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		workerID.Validate(),
		customerID.Validate(),
	); err != nil {
		return CreateOrderByWorkerCommand{}, err
	}

	return CreateOrderByWorkerCommand{
		orderID:      orderID,
		workerID:     workerID,
		customerID:   customerID,
		pickupTime:   pickupTime,
		deliveryTime: deliveryTime,
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderByWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderByWorkerCommandIsNotConstructed)
}

func (c CreateOrderByWorkerCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateOrderByWorkerCommand) WorkerID() kernel.UUID   { return c.workerID }
func (c CreateOrderByWorkerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderByWorkerCommand) PickupTime() time.Time   { return c.pickupTime }
func (c CreateOrderByWorkerCommand) DeliveryTime() time.Time { return c.deliveryTime }
func (c CreateOrderByWorkerCommand) Price() float64          { return c.price }
