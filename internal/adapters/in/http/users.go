package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SignUp handles POST /api/v1/users. Only customer and worker accounts can
// be created without an admin.
func (s *Server) SignUp(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(id, req.Name, req.Email, req.Phone, req.Role, id)
	if err != nil {
		return err
	}
	if cmd.Role() == user.Admin {
		return errs.NewAuthorizationError("Admin accounts are created by admins")
	}

	if err = s.h.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// RegisterUser handles POST /api/v1/admin/users.
func (s *Server) RegisterUser(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}

	var req RegisterUserRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(id, req.Name, req.Email, req.Phone, req.Role, actor.ID)
	if err != nil {
		return err
	}
	if err = s.h.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// AddCustomerAddress handles POST /api/v1/customer/addresses.
func (s *Server) AddCustomerAddress(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}

	var req AddAddressRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewAddCustomerAddressCommand(id, actor.ID, req.Street, req.City, req.Country, req.IsDefault)
	if err != nil {
		return err
	}
	if err = s.h.AddCustomerAddress.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}
