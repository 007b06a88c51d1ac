package customer

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// DefaultCountry is stored when an address is created without a country.
const DefaultCountry = "Pakistan"

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a delivery location owned by exactly one customer.
type Address struct {
	id         kernel.UUID
	customerID kernel.UUID
	street     string
	city       string
	country    string
	isDefault  bool
	createdAt  time.Time

	isConstructed bool
}

// NewAddress validates street and city. An empty country becomes DefaultCountry.
func NewAddress(id, customerID kernel.UUID, street, city, country string, isDefault bool, at time.Time) (*Address, error) {
	a := &Address{
		isDefault:     isDefault,
		createdAt:     at,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		a.setStreet(street),
		a.setCity(city),
	); err != nil {
		return nil, err
	}

	a.id = id
	a.customerID = customerID
	a.country = strings.TrimSpace(country)
	if a.country == "" {
		a.country = DefaultCountry
	}
	return a, nil
}

// RestoreAddress rebuilds an address from persistence.
func RestoreAddress(id, customerID kernel.UUID, street, city, country string, isDefault bool, createdAt time.Time) (*Address, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}
	return &Address{
		id:            id,
		customerID:    customerID,
		street:        street,
		city:          city,
		country:       country,
		isDefault:     isDefault,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() kernel.UUID         { return a.id }
func (a *Address) CustomerID() kernel.UUID { return a.customerID }
func (a *Address) Street() string          { return a.street }
func (a *Address) City() string            { return a.city }
func (a *Address) Country() string         { return a.country }
func (a *Address) IsDefault() bool         { return a.isDefault }
func (a *Address) CreatedAt() time.Time    { return a.createdAt }

// BelongsTo reports whether the address is owned by customerID.
func (a *Address) BelongsTo(customerID kernel.UUID) bool {
	return a.customerID.IsEqual(customerID)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewFieldValidationError("Street is required", "street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewFieldValidationError("City is required", "city")
	}
	a.city = city
	return nil
}

// PreferredAddress picks the default address, else the oldest one. It
// returns nil for an empty slice.
func PreferredAddress(addresses []*Address) *Address {
	var oldest *Address
	for _, a := range addresses {
		if a.isDefault {
			return a
		}
		if oldest == nil || a.createdAt.Before(oldest.createdAt) {
			oldest = a
		}
	}
	return oldest
}
