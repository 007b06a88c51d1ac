package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and charges the fee defined by
// the cancellation policies of the actor's role.
//
// Steps:
//   - the acting user must exist and hold the claimed role; workers may not cancel
//   - the order row is locked; customers only see their own orders
//   - cancellation after pickup or of a terminal order is rejected
//   - the fee is computed from the policy table and stored with the status
//
// Example:
//
//	cmd, _ := NewCancelOrderCommand(customerID, orderID, user.Customer)
//	result, err := handler.Handle(ctx, cmd)
//	// result.Message == "Order cancelled by customer Ayesha (ID: ...)"
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return CancelOrderResult{}, err
	}
	if actor.Role() != cmd.Role() {
		return CancelOrderResult{}, errs.NewAuthorizationError(
			fmt.Sprintf("User %s is not a %s", actor.ID(), cmd.Role()))
	}
	if cmd.Role() == user.Worker {
		return CancelOrderResult{}, errs.NewAuthorizationError("Workers cannot cancel orders")
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return CancelOrderResult{}, err
	}
	if cmd.Role() == user.Customer && !o.BelongsTo(cmd.UserID()) {
		return CancelOrderResult{}, errs.NewObjectNotFoundError("order_id", cmd.OrderID())
	}

	table, err := uow.PolicyRepository().Table(ctx)
	if err != nil {
		return CancelOrderResult{}, err
	}

	now := h.clock.Now()
	fee := services.NewCancellationFeeCalculator(table).Calculate(o, cmd.Role(), now)
	if err = o.Cancel(fee, cmd.UserID(), now); err != nil {
		return CancelOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return CancelOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	return CancelOrderResult{
		Message:         fmt.Sprintf("Order cancelled by %s %s (ID: %s)", cmd.Role(), actor.Name(), actor.ID()),
		OrderID:         o.ID(),
		CancellationFee: o.CancellationFee(),
	}, nil
}
