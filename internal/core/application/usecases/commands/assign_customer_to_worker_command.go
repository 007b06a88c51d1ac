package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignCustomerToWorkerCommandIsNotConstructed = errors.New(
	"AssignCustomerToWorkerCommand must be created via NewAssignCustomerToWorkerCommand constructor",
)

// AssignCustomerToWorkerCommand points a customer at a worker. Admin only;
// the role check happens at the edge.
type AssignCustomerToWorkerCommand struct {
	workerID   kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCustomerToWorkerCommand(workerID, customerID kernel.UUID) (AssignCustomerToWorkerCommand, error) {
	if err := errors.Join(workerID.Validate(), customerID.Validate()); err != nil {
		return AssignCustomerToWorkerCommand{}, err
	}
	return AssignCustomerToWorkerCommand{
		workerID:   workerID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCustomerToWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignCustomerToWorkerCommandIsNotConstructed)
}

func (c AssignCustomerToWorkerCommand) WorkerID() kernel.UUID   { return c.workerID }
func (c AssignCustomerToWorkerCommand) CustomerID() kernel.UUID { return c.customerID }
