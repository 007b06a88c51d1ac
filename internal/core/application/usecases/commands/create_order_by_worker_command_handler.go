package commands

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// CreateOrderByWorkerCommandHandler creates an order already assigned to the
// worker. The customer must be assigned to that worker; the order goes to
// the customer's default address, or the oldest one when none is marked.
type CreateOrderByWorkerCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCreateOrderByWorkerCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateOrderByWorkerCommandHandler {
	return CreateOrderByWorkerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateOrderByWorkerCommandHandler) Handle(ctx context.Context, cmd CreateOrderByWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !c.IsAssignedTo(cmd.WorkerID()) {
		return errs.NewFieldValidationError("Customer is not assigned to this worker", "customer_id")
	}

	addresses, err := customerRepo.ListAddresses(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	address := customer.PreferredAddress(addresses)
	if address == nil {
		return errs.NewFieldValidationError("Customer has no address on file", "address_id")
	}

	workerID := cmd.WorkerID()
	o, err := order.NewOrder(cmd.OrderID(), order.Draft{
		CustomerID:   cmd.CustomerID(),
		WorkerID:     &workerID,
		AddressID:    address.ID(),
		PickupTime:   cmd.PickupTime(),
		DeliveryTime: cmd.DeliveryTime(),
		Price:        cmd.Price(),
	}, workerID, h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
