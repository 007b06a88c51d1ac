package historyrepo

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/worker"
	"logistics/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppendOrderChanges writes pending order status changes and their outbox
// entries using db, which is expected to be the caller's transaction.
func AppendOrderChanges(ctx context.Context, db *gorm.DB, orderID kernel.UUID, changes []order.StatusChange) error {
	if len(changes) == 0 {
		return nil
	}

	rows := make([]OrderStatusHistoryDTO, 0, len(changes))
	outbox := make([]StatusOutboxDTO, 0, len(changes))
	for _, c := range changes {
		row := OrderStatusHistoryDTO{
			ID:        uuid.New(),
			OrderID:   orderID.Bytes(),
			Status:    c.Status.String(),
			ChangedBy: c.ChangedBy.Bytes(),
			ChangedAt: c.ChangedAt,
		}
		rows = append(rows, row)
		outbox = append(outbox, outboxEntry(ports.OrderSubject, row.ID, row.OrderID, row.Status, row.ChangedBy, row.ChangedAt))
	}
	return insert(ctx, db, &rows, &outbox)
}

// AppendWorkerChanges is the worker ledger counterpart of AppendOrderChanges.
func AppendWorkerChanges(ctx context.Context, db *gorm.DB, workerID kernel.UUID, changes []worker.StatusChange) error {
	if len(changes) == 0 {
		return nil
	}

	rows := make([]WorkerStatusHistoryDTO, 0, len(changes))
	outbox := make([]StatusOutboxDTO, 0, len(changes))
	for _, c := range changes {
		row := WorkerStatusHistoryDTO{
			ID:        uuid.New(),
			WorkerID:  workerID.Bytes(),
			Status:    c.Status.String(),
			ChangedBy: c.ChangedBy.Bytes(),
			ChangedAt: c.ChangedAt,
		}
		rows = append(rows, row)
		outbox = append(outbox, outboxEntry(ports.WorkerSubject, row.ID, row.WorkerID, row.Status, row.ChangedBy, row.ChangedAt))
	}
	return insert(ctx, db, &rows, &outbox)
}

func outboxEntry(subject ports.StatusSubject, id, subjectID uuid.UUID, status string, changedBy uuid.UUID, changedAt time.Time) StatusOutboxDTO {
	return StatusOutboxDTO{
		ID:        id,
		Subject:   string(subject),
		SubjectID: subjectID,
		Status:    status,
		ChangedBy: changedBy,
		ChangedAt: changedAt,
	}
}

func insert(ctx context.Context, db *gorm.DB, ledger any, outbox *[]StatusOutboxDTO) error {
	if err := db.WithContext(ctx).Create(ledger).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Create(outbox).Error
}
