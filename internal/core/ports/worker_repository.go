package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/worker"
)

// WorkerRepository persists worker profiles with their pending status
// history entries.
type WorkerRepository interface {
	Add(ctx context.Context, aggregate *worker.Worker) error
	Update(ctx context.Context, aggregate *worker.Worker) error
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*worker.Worker, error)
}
