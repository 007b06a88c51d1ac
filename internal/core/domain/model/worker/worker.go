package worker

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")

// StatusChange is one pending WorkerStatusHistory entry.
type StatusChange struct {
	Status    Status
	ChangedBy kernel.UUID
	ChangedAt time.Time
}

// Worker is the aggregate root for a worker profile.
type Worker struct {
	id               kernel.UUID
	status           Status
	performanceScore float64
	changes          []StatusChange

	isConstructed bool
}

// NewWorker creates an inactive worker profile for the user id. The initial
// status is recorded as the first history entry.
func NewWorker(id kernel.UUID, createdBy kernel.UUID, at time.Time) (*Worker, error) {
	if err := errors.Join(id.Validate(), createdBy.Validate()); err != nil {
		return nil, err
	}

	w := &Worker{
		id:            id,
		status:        Inactive,
		isConstructed: true,
	}
	w.record(Inactive, createdBy, at)
	return w, nil
}

// RestoreWorker rebuilds a worker from persistence. No change is recorded.
func RestoreWorker(id kernel.UUID, status Status, performanceScore float64) (*Worker, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Worker{
		id:               id,
		status:           status,
		performanceScore: performanceScore,
		isConstructed:    true,
	}, nil
}

func (w *Worker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}
	return nil
}

func (w *Worker) ID() kernel.UUID           { return w.id }
func (w *Worker) Status() Status            { return w.status }
func (w *Worker) PerformanceScore() float64 { return w.performanceScore }

// ChangeStatus moves the worker to status, recording the actor.
func (w *Worker) ChangeStatus(status Status, changedBy kernel.UUID, at time.Time) error {
	if err := status.Validate(); err != nil {
		return errs.NewFieldValidationError("Invalid status", "status")
	}
	if err := changedBy.Validate(); err != nil {
		return err
	}
	if status == w.status {
		return errs.NewFieldValidationError(fmt.Sprintf("Worker is already %s", status), "status")
	}

	w.status = status
	w.record(status, changedBy, at)
	return nil
}

// PendingStatusChanges returns the history entries not yet persisted.
func (w *Worker) PendingStatusChanges() []StatusChange {
	return w.changes
}

// ClearPendingStatusChanges is called by the repository after the entries
// are written.
func (w *Worker) ClearPendingStatusChanges() {
	w.changes = nil
}

func (w *Worker) record(status Status, by kernel.UUID, at time.Time) {
	w.changes = append(w.changes, StatusChange{
		Status:    status,
		ChangedBy: by,
		ChangedAt: at.UTC(),
	})
}
