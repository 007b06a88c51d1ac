package http

import (
	"net/http"
	"strings"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/observability"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateCustomerOrder handles POST /api/v1/customer/orders. The customer is
// always the caller.
func (s *Server) CreateCustomerOrder(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	return s.createOrder(c, actor, actor.ID, nil, req)
}

// CreateAdminOrder handles POST /api/v1/admin/orders.
func (s *Server) CreateAdminOrder(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	if req.CustomerID == nil {
		return errs.NewFieldValidationError("customer_id is required", "customer_id")
	}
	customerID, err := bodyUUID(*req.CustomerID, "customer_id")
	if err != nil {
		return err
	}

	var workerID *kernel.UUID
	if req.WorkerID != nil {
		id, idErr := bodyUUID(*req.WorkerID, "worker_id")
		if idErr != nil {
			return idErr
		}
		workerID = &id
	}
	return s.createOrder(c, actor, customerID, workerID, req)
}

func (s *Server) createOrder(c echo.Context, actor Actor, customerID kernel.UUID, workerID *kernel.UUID, req CreateOrderRequest) error {
	addressID, err := bodyUUID(req.AddressID, "address_id")
	if err != nil {
		return err
	}
	pickup, err := s.timestamps.Parse("pickup_time", req.PickupTime)
	if err != nil {
		return err
	}
	delivery, err := s.timestamps.Parse("delivery_time", req.DeliveryTime)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, workerID, addressID, pickup, delivery, req.Price, actor.ID)
	if err != nil {
		return err
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	observability.OrdersCreatedTotal.WithLabelValues(actor.Role.String()).Inc()
	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// CreateWorkerOrder handles POST /api/v1/worker/orders for a customer
// assigned to the calling worker.
func (s *Server) CreateWorkerOrder(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}

	var req CreateWorkerOrderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	customerID, err := bodyUUID(req.CustomerID, "customer_id")
	if err != nil {
		return err
	}
	pickup, err := s.timestamps.Parse("pickup_time", req.PickupTime)
	if err != nil {
		return err
	}
	delivery, err := s.timestamps.Parse("delivery_time", req.DeliveryTime)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderByWorkerCommand(orderID, actor.ID, customerID, pickup, delivery, req.Price)
	if err != nil {
		return err
	}
	if err = s.h.CreateOrderByWorker.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	observability.OrdersCreatedTotal.WithLabelValues(actor.Role.String()).Inc()
	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// ClaimOrder handles POST /api/v1/worker/orders/{order_id}/claim.
func (s *Server) ClaimOrder(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "order_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewClaimOrderCommand(actor.ID, orderID)
	if err != nil {
		return err
	}
	if err = s.h.ClaimOrder.Handle(c.Request().Context(), cmd); err != nil {
		observability.OrderClaimsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	observability.OrderClaimsTotal.WithLabelValues("claimed").Inc()
	return c.JSON(http.StatusOK, MessageResponse{Message: "Order claimed successfully", OrderID: orderID.String()})
}

// UpdateOrderStatus handles POST /api/v1/worker/orders/{order_id}/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "order_id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor.ID, orderID, req.Status)
	if err != nil {
		return err
	}
	if err = s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	observability.OrderTransitionsTotal.WithLabelValues(status).Inc()
	return c.JSON(http.StatusOK, OrderStatusResponse{OrderID: orderID.String(), Status: status})
}

// CancelOrder handles DELETE on the customer and admin order paths.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "order_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(actor.ID, orderID, actor.Role)
	if err != nil {
		return err
	}
	result, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	observability.OrderCancellationsTotal.WithLabelValues(actor.Role.String()).Inc()
	observability.CancellationFees.WithLabelValues(actor.Role.String()).Observe(result.CancellationFee)
	return c.JSON(http.StatusOK, CancelOrderResponse{
		Message:         result.Message,
		OrderID:         result.OrderID.String(),
		CancellationFee: result.CancellationFee,
	})
}

// ListCustomerOrders handles GET /api/v1/customer/orders.
func (s *Server) ListCustomerOrders(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerOrdersQuery(actor.ID)
	if err != nil {
		return err
	}
	views, err := s.h.ListCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(views))
}

// ListOrders handles GET /api/v1/admin/orders. The status parameter takes a
// comma separated list and may be repeated.
func (s *Server) ListOrders(c echo.Context) error {
	var statuses []string
	for _, raw := range c.QueryParams()["status"] {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				statuses = append(statuses, name)
			}
		}
	}

	query, err := queries.NewListOrdersQuery(statuses...)
	if err != nil {
		return err
	}
	views, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(views))
}

// ListUnclaimedOrders handles GET /api/v1/worker/orders/unclaimed.
func (s *Server) ListUnclaimedOrders(c echo.Context) error {
	views, err := s.h.ListUnclaimedOrders.Handle(c.Request().Context(), queries.NewListUnclaimedOrdersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(views))
}

// GetOrderHistory handles GET /api/v1/orders/{order_id}/history.
func (s *Server) GetOrderHistory(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "order_id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID, actor.ID, actor.Role)
	if err != nil {
		return err
	}
	entries, err := s.h.GetOrderHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHistoryResponses(entries))
}
