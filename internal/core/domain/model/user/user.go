// Package user holds the identity shared by all actors: the User entity and
// its Role.
package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)
)

// User is an authenticated identity. Role never changes after creation;
// contact fields may.
type User struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	role      Role
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewUser validates contact data and returns a user with the given role.
// Validation failures are reported per field as errs.ValidationError.
func NewUser(id kernel.UUID, name, email, phone string, role Role, at time.Time) (*User, error) {
	u := &User{
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPhone(phone),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user from persistence without contact validation.
func RestoreUser(id kernel.UUID, name, email, phone string, role Role, createdAt, updatedAt time.Time) (*User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		role:          role,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) Phone() string        { return u.phone }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewFieldValidationError("Name is required", "name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return errs.NewFieldValidationError("Invalid email format", "email")
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return errs.NewFieldValidationError("Invalid phone number format", "phone")
	}
	u.phone = phone
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return errs.NewFieldValidationError(fmt.Sprintf("Invalid role provided: %s", role), "role")
	}
	u.role = role
	return nil
}
