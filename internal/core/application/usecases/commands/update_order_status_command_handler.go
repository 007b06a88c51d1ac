package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler locks the order row, checks that it is
// assigned to the worker and advances it. An order assigned to another
// worker is reported as not found.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, clock kernel.Clock) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.IsAssignedTo(cmd.WorkerID()) {
		return errs.NewObjectNotFoundError("order_id", cmd.OrderID())
	}

	if err = o.AdvanceTo(cmd.Status(), cmd.WorkerID(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
