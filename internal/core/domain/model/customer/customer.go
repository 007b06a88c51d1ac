// Package customer holds the Customer aggregate and its delivery addresses.
//
// A customer is the profile of a user with the customer role. Admins may
// point it at one worker; that pointer decides which worker is allowed to
// create orders on the customer's behalf. Reassignment is last-write-wins.
package customer

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

type Customer struct {
	id             kernel.UUID
	assignedWorker *kernel.UUID

	isConstructed bool
}

// NewCustomer creates an unassigned customer profile for the user id.
func NewCustomer(id kernel.UUID) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Customer{id: id, isConstructed: true}, nil
}

// RestoreCustomer rebuilds a customer from persistence.
func RestoreCustomer(id kernel.UUID, assignedWorker *kernel.UUID) (*Customer, error) {
	c, err := NewCustomer(id)
	if err != nil {
		return nil, err
	}
	if assignedWorker != nil {
		if err := assignedWorker.Validate(); err != nil {
			return nil, err
		}
		w := *assignedWorker
		c.assignedWorker = &w
	}
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID { return c.id }

// AssignedWorker returns nil when no worker is assigned.
func (c *Customer) AssignedWorker() *kernel.UUID {
	return c.assignedWorker
}

// AssignWorker overwrites any previous assignment.
func (c *Customer) AssignWorker(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	c.assignedWorker = &workerID
	return nil
}

// IsAssignedTo reports whether workerID is the customer's current worker.
func (c *Customer) IsAssignedTo(workerID kernel.UUID) bool {
	return c.assignedWorker != nil && c.assignedWorker.IsEqual(workerID)
}
