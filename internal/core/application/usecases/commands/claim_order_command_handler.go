package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// ClaimOrderCommandHandler assigns an order to the first worker that claims
// it. The aggregate check runs on an unlocked read; the repository repeats it
// as a conditional UPDATE so two concurrent claims cannot both succeed.
//
// A missing order, an order claimed by someone else and a lost race all
// surface as errs.ObjectNotFoundError, as does a caller without a worker
// profile.
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewClaimOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	if _, err := uow.WorkerRepository().Get(ctx, cmd.WorkerID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Claim(cmd.WorkerID(), h.clock.Now()); err != nil {
		if errors.Is(err, order.ErrOrderIsNotClaimable) {
			return errs.NewObjectNotFoundErrorWithCause("order_id", cmd.OrderID(), err)
		}
		return err
	}

	if err = orderRepo.Claim(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
