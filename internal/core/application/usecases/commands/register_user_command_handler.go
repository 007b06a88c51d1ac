package commands

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/model/worker"
)

// RegisterUserCommandHandler stores the user and its profile row in one
// transaction. Duplicate email or phone comes back from the repository as a
// field validation error.
type RegisterUserCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewRegisterUserCommandHandler(uowFactory UoWFactory, clock kernel.Clock) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()
	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Role(), now)
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

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return err
	}

	switch u.Role() {
	case user.Customer:
		c, err := customer.NewCustomer(u.ID())
		if err != nil {
			return err
		}
		if err = uow.CustomerRepository().Add(ctx, c); err != nil {
			return err
		}
	case user.Worker:
		w, err := worker.NewWorker(u.ID(), cmd.RegisteredBy(), now)
		if err != nil {
			return err
		}
		if err = uow.WorkerRepository().Add(ctx, w); err != nil {
			return err
		}
	case user.Admin, user.UnknownRole:
	}

	return uow.Commit(ctx)
}
