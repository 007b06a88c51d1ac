// Package queries holds read-only projections. Handlers read straight from
// the database with raw SQL and never load aggregates.
package queries

import (
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderView is the order row as returned by every listing.
type OrderView struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	WorkerID        *kernel.UUID
	AddressID       kernel.UUID
	PickupTime      time.Time
	DeliveryTime    time.Time
	Status          string
	Price           float64
	CancellationFee float64
	CreatedBy       kernel.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const orderViewColumns = `
	id,
	customer_id,
	worker_id,
	address_id,
	pickup_time,
	delivery_time,
	status,
	price,
	cancellation_fee,
	created_by,
	created_at,
	updated_at`

func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			view                                 OrderView
			id, customerID, addressID, createdBy uuid.UUID
			workerID                             *uuid.UUID
		)
		err := rows.Scan(
			&id,
			&customerID,
			&workerID,
			&addressID,
			&view.PickupTime,
			&view.DeliveryTime,
			&view.Status,
			&view.Price,
			&view.CancellationFee,
			&createdBy,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if view.WorkerID, err = kernel.OptionalUUIDFromBytes(workerID); err != nil {
			return nil, err
		}
		if view.AddressID, err = kernel.UUIDFromBytes(addressID[:]); err != nil {
			return nil, err
		}
		if view.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
			return nil, err
		}

		view.PickupTime = view.PickupTime.UTC()
		view.DeliveryTime = view.DeliveryTime.UTC()
		view.CreatedAt = view.CreatedAt.UTC()
		view.UpdatedAt = view.UpdatedAt.UTC()
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
