package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order for a customer. It is issued by the
// customer itself or by an admin, who may also pre-assign a worker.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, nil, addressID,
//	    pickup, delivery, 1000, customerID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	workerID     *kernel.UUID
	addressID    kernel.UUID
	pickupTime   time.Time
	deliveryTime time.Time
	price        float64
	createdBy    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks identifiers only; schedule and price rules
// belong to the order aggregate.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	workerID *kernel.UUID,
	addressID kernel.UUID,
	pickupTime, deliveryTime time.Time,
	price float64,
	createdBy kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		pickupTime:   pickupTime,
		deliveryTime: deliveryTime,
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		addressID.Validate(),
		createdBy.Validate(),
		cmd.setWorkerID(workerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.customerID = customerID
	cmd.addressID = addressID
	cmd.createdBy = createdBy
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) WorkerID() *kernel.UUID  { return c.workerID }
func (c CreateOrderCommand) AddressID() kernel.UUID  { return c.addressID }
func (c CreateOrderCommand) PickupTime() time.Time   { return c.pickupTime }
func (c CreateOrderCommand) DeliveryTime() time.Time { return c.deliveryTime }
func (c CreateOrderCommand) Price() float64          { return c.price }
func (c CreateOrderCommand) CreatedBy() kernel.UUID  { return c.createdBy }

func (c *CreateOrderCommand) setWorkerID(workerID *kernel.UUID) error {
	if workerID == nil {
		return nil
	}
	if err := workerID.Validate(); err != nil {
		return err
	}
	w := *workerID
	c.workerID = &w
	return nil
}
