// Package workerrepo persists worker profiles. Status transitions are
// appended to worker_status_history in the same transaction.
package workerrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

type WorkerDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status           string    `gorm:"type:varchar(16);not null;default:inactive"`
	PerformanceScore float64   `gorm:"not null;default:0"`
}

func (WorkerDTO) TableName() string {
	return "workers"
}

func fromDomain(w *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:               w.ID().Bytes(),
		Status:           w.Status().String(),
		PerformanceScore: w.PerformanceScore(),
	}
}

func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := worker.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return worker.RestoreWorker(id, status, dto.PerformanceScore)
}
