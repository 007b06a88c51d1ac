package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAddCustomerAddressCommandIsNotConstructed = errors.New(
	"AddCustomerAddressCommand must be created via NewAddCustomerAddressCommand constructor",
)

// AddCustomerAddressCommand adds an address to the customer's address book.
type AddCustomerAddressCommand struct {
	addressID  kernel.UUID
	customerID kernel.UUID
	street     string
	city       string
	country    string
	isDefault  bool

	guard guard.ConstructorGuard
}

func NewAddCustomerAddressCommand(
	addressID, customerID kernel.UUID,
	street, city, country string,
	isDefault bool,
) (AddCustomerAddressCommand, error) {
	if err := errors.Join(addressID.Validate(), customerID.Validate()); err != nil {
		return AddCustomerAddressCommand{}, err
	}
	return AddCustomerAddressCommand{
		addressID:  addressID,
		customerID: customerID,
		street:     street,
		city:       city,
		country:    country,
		isDefault:  isDefault,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddCustomerAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomerAddressCommandIsNotConstructed)
}

func (c AddCustomerAddressCommand) AddressID() kernel.UUID  { return c.addressID }
func (c AddCustomerAddressCommand) CustomerID() kernel.UUID { return c.customerID }
func (c AddCustomerAddressCommand) Street() string          { return c.street }
func (c AddCustomerAddressCommand) City() string            { return c.city }
func (c AddCustomerAddressCommand) Country() string         { return c.country }
func (c AddCustomerAddressCommand) IsDefault() bool         { return c.isDefault }
