package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// CreateOrderCommandHandler creates an order in the created status after
// checking that the customer, the address and any pre-assigned worker exist.
// An address owned by another customer is reported as not found.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), order.Draft{
		CustomerID:   cmd.CustomerID(),
		WorkerID:     cmd.WorkerID(),
		AddressID:    cmd.AddressID(),
		PickupTime:   cmd.PickupTime(),
		DeliveryTime: cmd.DeliveryTime(),
		Price:        cmd.Price(),
	}, cmd.CreatedBy(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	if _, err = customerRepo.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	address, err := customerRepo.GetAddress(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if !address.BelongsTo(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("address_id", cmd.AddressID())
	}

	if cmd.WorkerID() != nil {
		if _, err = uow.WorkerRepository().Get(ctx, *cmd.WorkerID()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
