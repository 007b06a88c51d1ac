package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// ChangeWorkerStatus handles PUT /api/v1/workers/{worker_id}/status. Admins
// may change any worker; a worker only itself.
func (s *Server) ChangeWorkerStatus(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}
	workerID, err := pathUUID(c, "worker_id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeWorkerStatusCommand(workerID, req.Status, actor.ID, actor.Role)
	if err != nil {
		return err
	}
	if err = s.h.ChangeWorkerStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, WorkerStatusResponse{WorkerID: workerID.String(), Status: cmd.Status().String()})
}

// AssignCustomer handles POST /api/v1/admin/workers/{worker_id}/customers.
func (s *Server) AssignCustomer(c echo.Context) error {
	workerID, err := pathUUID(c, "worker_id")
	if err != nil {
		return err
	}

	var req AssignCustomerRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	customerID, err := bodyUUID(req.CustomerID, "customer_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignCustomerToWorkerCommand(workerID, customerID)
	if err != nil {
		return err
	}
	msg, err := s.h.AssignCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: msg})
}
