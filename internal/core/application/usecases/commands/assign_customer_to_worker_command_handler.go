package commands

import (
	"context"
	"fmt"
)

// AssignCustomerToWorkerCommandHandler overwrites the customer's worker
// under a row lock. Both parties must exist.
type AssignCustomerToWorkerCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignCustomerToWorkerCommandHandler(uowFactory UoWFactory) AssignCustomerToWorkerCommandHandler {
	return AssignCustomerToWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns a confirmation message for the caller.
func (h AssignCustomerToWorkerCommandHandler) Handle(ctx context.Context, cmd AssignCustomerToWorkerCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.GetForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return "", err
	}

	if _, err = uow.WorkerRepository().Get(ctx, cmd.WorkerID()); err != nil {
		return "", err
	}

	if err = c.AssignWorker(cmd.WorkerID()); err != nil {
		return "", err
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return fmt.Sprintf("Customer %s assigned to worker %s", cmd.CustomerID(), cmd.WorkerID()), nil
}
