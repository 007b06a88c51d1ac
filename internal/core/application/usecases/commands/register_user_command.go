package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates an identity and, for customers and workers,
// the matching profile. registeredBy is the admin for admin-created users
// and the new user itself for self-registration.
type RegisterUserCommand struct {
	userID       kernel.UUID
	name         string
	email        string
	phone        string
	role         user.Role
	registeredBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand parses the role name. Contact fields are validated
// by the user entity.
func NewRegisterUserCommand(
	userID kernel.UUID,
	name, email, phone, role string,
	registeredBy kernel.UUID,
) (RegisterUserCommand, error) {
	parsed, roleErr := user.ParseRole(role)
	if roleErr != nil {
		roleErr = errs.NewFieldValidationError("Invalid role provided: "+role, "role")
	}
	if err := errors.Join(userID.Validate(), registeredBy.Validate(), roleErr); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		userID:       userID,
		name:         name,
		email:        email,
		phone:        phone,
		role:         parsed,
		registeredBy: registeredBy,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID       { return c.userID }
func (c RegisterUserCommand) Name() string              { return c.name }
func (c RegisterUserCommand) Email() string             { return c.email }
func (c RegisterUserCommand) Phone() string             { return c.phone }
func (c RegisterUserCommand) Role() user.Role           { return c.role }
func (c RegisterUserCommand) RegisteredBy() kernel.UUID { return c.registeredBy }
