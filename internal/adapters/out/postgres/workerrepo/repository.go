package workerrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/historyrepo"
	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/worker"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormWorkerRepository struct {
	db *gorm.DB
}

func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

func (r *GormWorkerRepository) Add(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return errs.NewFieldValidationError("Worker already exists", "worker_id")
		}
		if constraint, ok := pgerr.ForeignKeyViolation(err); ok {
			return errs.NewObjectNotFoundErrorWithCause(constraint, aggregate.ID(), err)
		}
		return err
	}

	return r.flush(ctx, aggregate)
}

func (r *GormWorkerRepository) Update(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkerDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "performance_score").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("worker_id", aggregate.ID())
	}

	return r.flush(ctx, aggregate)
}

func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	return r.get(ctx, id, false)
}

func (r *GormWorkerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	return r.get(ctx, id, true)
}

func (r *GormWorkerRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto WorkerDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormWorkerRepository) flush(ctx context.Context, aggregate *worker.Worker) error {
	if err := historyrepo.AppendWorkerChanges(ctx, r.db, aggregate.ID(), aggregate.PendingStatusChanges()); err != nil {
		return err
	}
	aggregate.ClearPendingStatusChanges()
	return nil
}
