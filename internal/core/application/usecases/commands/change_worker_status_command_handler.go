package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// ChangeWorkerStatusCommandHandler records a worker availability change and
// its history entry in one transaction.
type ChangeWorkerStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewChangeWorkerStatusCommandHandler(uowFactory UoWFactory, clock kernel.Clock) ChangeWorkerStatusCommandHandler {
	return ChangeWorkerStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ChangeWorkerStatusCommandHandler) Handle(ctx context.Context, cmd ChangeWorkerStatusCommand) error {
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

	workerRepo := uow.WorkerRepository()
	w, err := workerRepo.GetForUpdate(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = w.ChangeStatus(cmd.Status(), cmd.ChangedBy(), h.clock.Now()); err != nil {
		return err
	}

	if err = workerRepo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
