package commands

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
)

type AddCustomerAddressCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewAddCustomerAddressCommandHandler(uowFactory UoWFactory, clock kernel.Clock) AddCustomerAddressCommandHandler {
	return AddCustomerAddressCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h AddCustomerAddressCommandHandler) Handle(ctx context.Context, cmd AddCustomerAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	address, err := customer.NewAddress(
		cmd.AddressID(), cmd.CustomerID(),
		cmd.Street(), cmd.City(), cmd.Country(),
		cmd.IsDefault(), h.clock.Now(),
	)
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

	if err = customerRepo.AddAddress(ctx, address); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
