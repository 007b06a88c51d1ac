// Package orderrepo maps the order aggregate to the orders table and keeps
// its status ledger in step with every write.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. Status is stored by name so raw SQL readers
// and the ledger share one vocabulary.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkerID        *uuid.UUID `gorm:"type:uuid;index"`
	AddressID       uuid.UUID  `gorm:"type:uuid;not null"`
	PickupTime      time.Time  `gorm:"type:timestamptz;not null"`
	DeliveryTime    time.Time  `gorm:"type:timestamptz;not null"`
	Status          string     `gorm:"type:varchar(32);not null;index"`
	Price           float64    `gorm:"not null"`
	CancellationFee float64    `gorm:"not null;default:0"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt       time.Time  `gorm:"type:timestamptz;not null;index"`
	UpdatedAt       time.Time  `gorm:"type:timestamptz;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID().Bytes(),
		CustomerID:      o.CustomerID().Bytes(),
		WorkerID:        kernel.OptionalBytes(o.Worker()),
		AddressID:       o.AddressID().Bytes(),
		PickupTime:      o.PickupTime(),
		DeliveryTime:    o.DeliveryTime(),
		Status:          o.Status().String(),
		Price:           o.Price(),
		CancellationFee: o.CancellationFee(),
		CreatedBy:       o.CreatedBy().Bytes(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	workerID, err := kernel.OptionalUUIDFromBytes(dto.WorkerID)
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		CustomerID:      customerID,
		WorkerID:        workerID,
		AddressID:       addressID,
		PickupTime:      dto.PickupTime,
		DeliveryTime:    dto.DeliveryTime,
		Status:          status,
		Price:           dto.Price,
		CancellationFee: dto.CancellationFee,
		CreatedBy:       createdBy,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
