package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/model/worker"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrChangeWorkerStatusCommandIsNotConstructed = errors.New(
	"ChangeWorkerStatusCommand must be created via NewChangeWorkerStatusCommand constructor",
)

// ChangeWorkerStatusCommand sets a worker active or inactive. Admins may
// change any worker; a worker may only change itself.
type ChangeWorkerStatusCommand struct {
	workerID  kernel.UUID
	status    worker.Status
	changedBy kernel.UUID

	guard guard.ConstructorGuard
}

func NewChangeWorkerStatusCommand(
	workerID kernel.UUID,
	status string,
	changedBy kernel.UUID,
	actorRole user.Role,
) (ChangeWorkerStatusCommand, error) {
	parsed, statusErr := worker.ParseStatus(status)
	if err := errors.Join(workerID.Validate(), changedBy.Validate(), statusErr); err != nil {
		return ChangeWorkerStatusCommand{}, err
	}

	switch {
	case actorRole == user.Admin:
	case actorRole == user.Worker && changedBy.IsEqual(workerID):
	default:
		return ChangeWorkerStatusCommand{}, errs.NewAuthorizationError("")
	}

	return ChangeWorkerStatusCommand{
		workerID:  workerID,
		status:    parsed,
		changedBy: changedBy,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeWorkerStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeWorkerStatusCommandIsNotConstructed)
}

func (c ChangeWorkerStatusCommand) WorkerID() kernel.UUID  { return c.workerID }
func (c ChangeWorkerStatusCommand) Status() worker.Status  { return c.status }
func (c ChangeWorkerStatusCommand) ChangedBy() kernel.UUID { return c.changedBy }
