// Package ports defines the contracts between the core and its adapters:
// repositories bound to a unit of work and the status event publisher.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their pending
// status history entries.
type OrderRepository interface {
	// Add inserts a new order and its pending history entries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order and appends its pending history entries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Claim writes a claimed order with a compare-and-set on the stored row:
	// it only matches while the row has no worker and is still created.
	// A zero-row match is returned as errs.ObjectNotFoundError.
	Claim(ctx context.Context, aggregate *order.Order) error

	// Get reads an order without locking.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate reads an order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
