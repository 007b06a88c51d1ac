package orderrepo

import (
	"context"
	"errors"

	"logistics/internal/adapters/out/postgres/historyrepo"
	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its pending history entries.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err, aggregate.ID())
	}

	return r.flush(ctx, aggregate)
}

// Update writes every mutable column and appends pending history entries.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("worker_id", "status", "cancellation_fee", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return translate(result.Error, aggregate.ID())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order_id", aggregate.ID())
	}

	return r.flush(ctx, aggregate)
}

// Claim only matches a row that is still unclaimed. Losing the race to
// another worker leaves RowsAffected at zero.
func (r *GormOrderRepository) Claim(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.Worker() == nil || aggregate.Status() != order.Claimed {
		return order.ErrOrderIsNotClaimable
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND worker_id IS NULL AND status = ?", dto.ID, order.Created.String()).
		Updates(map[string]any{
			"worker_id":  dto.WorkerID,
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return translate(result.Error, aggregate.ID())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order_id", aggregate.ID())
	}

	return r.flush(ctx, aggregate)
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate takes a row lock held until the surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) flush(ctx context.Context, aggregate *order.Order) error {
	if err := historyrepo.AppendOrderChanges(ctx, r.db, aggregate.ID(), aggregate.PendingStatusChanges()); err != nil {
		return err
	}
	aggregate.ClearPendingStatusChanges()

	return nil
}

// translate maps constraint violations to domain errors: a duplicate id is
// a validation failure, a dangling reference is a missing object.
func translate(err error, id kernel.UUID) error {
	if _, ok := pgerr.UniqueViolation(err); ok {
		return errs.NewFieldValidationError("Order already exists", "order_id")
	}
	if constraint, ok := pgerr.ForeignKeyViolation(err); ok {
		return errs.NewObjectNotFoundErrorWithCause(constraint, id, err)
	}
	return err
}
