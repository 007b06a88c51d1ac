// Package http is the echo adapter. Handlers translate requests into
// commands and queries; every error they return is rendered by the
// handler from NewErrorHandler.
package http

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers are the use cases the server exposes.
type Handlers struct {
	RegisterUser        CommandHandler[commands.RegisterUserCommand]
	AddCustomerAddress  CommandHandler[commands.AddCustomerAddressCommand]
	CreateOrder         CommandHandler[commands.CreateOrderCommand]
	CreateOrderByWorker CommandHandler[commands.CreateOrderByWorkerCommand]
	ClaimOrder          CommandHandler[commands.ClaimOrderCommand]
	UpdateOrderStatus   CommandHandler[commands.UpdateOrderStatusCommand]
	ChangeWorkerStatus  CommandHandler[commands.ChangeWorkerStatusCommand]
	CancelOrder         ResultHandler[commands.CancelOrderCommand, commands.CancelOrderResult]
	AssignCustomer      ResultHandler[commands.AssignCustomerToWorkerCommand, string]

	ListOrders          ResultHandler[queries.ListOrdersQuery, []queries.OrderView]
	ListCustomerOrders  ResultHandler[queries.ListCustomerOrdersQuery, []queries.OrderView]
	ListUnclaimedOrders ResultHandler[queries.ListUnclaimedOrdersQuery, []queries.OrderView]
	GetOrderHistory     ResultHandler[queries.GetOrderHistoryQuery, []queries.StatusHistoryEntry]
}

// Server implements the REST API on top of the application handlers.
type Server struct {
	h          Handlers
	timestamps kernel.Timestamps
	logger     *slog.Logger
}

func NewServer(h Handlers, timestamps kernel.Timestamps, logger *slog.Logger) *Server {
	return &Server{
		h:          h,
		timestamps: timestamps,
		logger:     logger,
	}
}

// RegisterRoutes mounts the API under /api/v1. Gates are built here so a
// misconfigured role set stops the process at startup.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	var (
		customers  = RequireRoles(services.MustNewAccessGate("customer"))
		workers    = RequireRoles(services.MustNewAccessGate("worker"))
		admins     = RequireRoles(services.MustNewAccessGate("admin"))
		staff      = RequireRoles(services.MustNewAccessGate("admin", "worker"))
		everyone   = RequireRoles(services.MustNewAccessGate("admin", "worker", "customer"))
		identified = Identity()
	)

	api := e.Group("/api/v1")
	api.POST("/users", s.SignUp)

	customer := api.Group("/customer", identified, customers)
	customer.POST("/addresses", s.AddCustomerAddress)
	customer.POST("/orders", s.CreateCustomerOrder)
	customer.GET("/orders", s.ListCustomerOrders)
	customer.DELETE("/orders/:order_id", s.CancelOrder)

	worker := api.Group("/worker", identified, workers)
	worker.GET("/orders/unclaimed", s.ListUnclaimedOrders)
	worker.POST("/orders/:order_id/claim", s.ClaimOrder)
	worker.POST("/orders/:order_id/status", s.UpdateOrderStatus)
	worker.POST("/orders", s.CreateWorkerOrder)

	api.PUT("/workers/:worker_id/status", s.ChangeWorkerStatus, identified, staff)

	admin := api.Group("/admin", identified, admins)
	admin.POST("/users", s.RegisterUser)
	admin.GET("/orders", s.ListOrders)
	admin.POST("/orders", s.CreateAdminOrder)
	admin.DELETE("/orders/:order_id", s.CancelOrder)
	admin.POST("/workers/:worker_id/customers", s.AssignCustomer)

	api.GET("/orders/:order_id/history", s.GetOrderHistory, identified, everyone)
}
