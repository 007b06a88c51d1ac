package ports

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
)

// CustomerRepository persists customer profiles and their addresses.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetForUpdate locks the customer row, serializing assignment changes.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	AddAddress(ctx context.Context, address *customer.Address) error
	GetAddress(ctx context.Context, id kernel.UUID) (*customer.Address, error)

	// ListAddresses returns the customer's addresses, oldest first.
	ListAddresses(ctx context.Context, customerID kernel.UUID) ([]*customer.Address, error)
}
