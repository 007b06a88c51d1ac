package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the ledger oldest first. An order the actor may not see is
// reported exactly like a missing one.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]StatusHistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	visible, err := h.isVisible(db, query)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}

	rows, err := db.Raw(`
		SELECT
			status,
			changed_by,
			changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]StatusHistoryEntry, 0)
	for rows.Next() {
		var entry StatusHistoryEntry
		var changedBy uuid.UUID
		if err = rows.Scan(&entry.Status, &changedBy, &entry.ChangedAt); err != nil {
			return nil, err
		}
		if entry.ChangedBy, err = kernel.UUIDFromBytes(changedBy[:]); err != nil {
			return nil, err
		}
		entry.ChangedAt = entry.ChangedAt.UTC()
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h GetOrderHistoryQueryHandler) isVisible(db *gorm.DB, query GetOrderHistoryQuery) (bool, error) {
	var owner struct {
		CustomerID uuid.UUID
		WorkerID   *uuid.UUID
	}
	result := db.Raw(`SELECT customer_id, worker_id FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Scan(&owner)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	actor := query.ActorID().Bytes()
	switch query.Role() {
	case user.Admin:
		return true, nil
	case user.Customer:
		return owner.CustomerID == actor, nil
	case user.Worker:
		return owner.WorkerID != nil && *owner.WorkerID == actor, nil
	default:
		return false, nil
	}
}
