// Package customerrepo persists customer profiles and their address books.
package customerrepo

import (
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AssignedWorkerID *uuid.UUID `gorm:"type:uuid;index"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Street     string    `gorm:"not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	Country    string    `gorm:"type:varchar(100);not null;default:Pakistan"`
	IsDefault  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"type:timestamptz;not null"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

func customerFromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:               c.ID().Bytes(),
		AssignedWorkerID: kernel.OptionalBytes(c.AssignedWorker()),
	}
}

func customerToDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	workerID, err := kernel.OptionalUUIDFromBytes(dto.AssignedWorkerID)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, workerID)
}

func addressFromDomain(a *customer.Address) AddressDTO {
	return AddressDTO{
		ID:         a.ID().Bytes(),
		CustomerID: a.CustomerID().Bytes(),
		Street:     a.Street(),
		City:       a.City(),
		Country:    a.Country(),
		IsDefault:  a.IsDefault(),
		CreatedAt:  a.CreatedAt(),
	}
}

func addressToDomain(dto AddressDTO) (*customer.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreAddress(id, customerID, dto.Street, dto.City, dto.Country, dto.IsDefault, dto.CreatedAt)
}
