package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/events"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/policy"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	timestamps kernel.Timestamps
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	timestamps, err := kernel.NewTimestamps(configs.RecordTimezone)
	if err != nil {
		return CompositionRoot{}, err
	}

	publisher, err := newPublisher(configs, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      kernel.SystemClock{},
		timestamps: timestamps,
		publisher:  publisher,
		logger:     logger,
	}, nil
}

func newPublisher(configs Config, logger *slog.Logger) (ports.EventPublisher, error) {
	switch strings.ToLower(configs.EventBroker) {
	case BrokerKafka:
		return events.NewKafkaPublisher(configs.KafkaBrokers, configs.KafkaStatusTopic), nil
	case BrokerRabbitMQ:
		publisher, err := events.DialRabbitMQPublisher(configs.RabbitMQURL, configs.RabbitMQExchange)
		if err != nil {
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		return publisher, nil
	default:
		return events.NewLogPublisher(logger.With("component", "status_events")), nil
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoW() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateAddCustomerAddressCommandHandler() commands.AddCustomerAddressCommandHandler {
	return commands.NewAddCustomerAddressCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateCreateOrderByWorkerCommandHandler() commands.CreateOrderByWorkerCommandHandler {
	return commands.NewCreateOrderByWorkerCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateChangeWorkerStatusCommandHandler() commands.ChangeWorkerStatusCommandHandler {
	return commands.NewChangeWorkerStatusCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateAssignCustomerToWorkerCommandHandler() commands.AssignCustomerToWorkerCommandHandler {
	return commands.NewAssignCustomerToWorkerCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRelayStatusHistoryCommandHandler() commands.RelayStatusHistoryCommandHandler {
	return commands.NewRelayStatusHistoryCommandHandler(c.outboxUoW(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUnclaimedOrdersQueryHandler() queries.ListUnclaimedOrdersQueryHandler {
	return queries.NewListUnclaimedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		RegisterUser:        c.CreateRegisterUserCommandHandler(),
		AddCustomerAddress:  c.CreateAddCustomerAddressCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		CreateOrderByWorker: c.CreateCreateOrderByWorkerCommandHandler(),
		ClaimOrder:          c.CreateClaimOrderCommandHandler(),
		UpdateOrderStatus:   c.CreateUpdateOrderStatusCommandHandler(),
		ChangeWorkerStatus:  c.CreateChangeWorkerStatusCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		AssignCustomer:      c.CreateAssignCustomerToWorkerCommandHandler(),
		ListOrders:          c.CreateListOrdersQueryHandler(),
		ListCustomerOrders:  c.CreateListCustomerOrdersQueryHandler(),
		ListUnclaimedOrders: c.CreateListUnclaimedOrdersQueryHandler(),
		GetOrderHistory:     c.CreateGetOrderHistoryQueryHandler(),
	}, c.timestamps, c.logger.With("component", "http"))
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateRelayStatusHistoryCommandHandler(),
		c.configs.RelaySchedule,
		c.configs.RelayBatchSize,
		c.logger,
	)
}

// SeedCancellationPolicies writes the configured default policy for every
// role unless the table already holds rows.
func (c *CompositionRoot) SeedCancellationPolicies(ctx context.Context) error {
	var defaults []policy.CancellationPolicy
	for _, role := range []user.Role{user.Customer, user.Worker, user.Admin} {
		p, err := policy.NewCancellationPolicy(role, c.configs.DefaultFeePercentage, c.configs.DefaultWindowMinutes)
		if err != nil {
			return err
		}
		defaults = append(defaults, p)
	}

	cmd, err := commands.NewSeedCancellationPoliciesCommand(defaults...)
	if err != nil {
		return err
	}
	seeded, err := commands.NewSeedCancellationPoliciesCommandHandler(c.uow()).Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if seeded {
		c.logger.InfoContext(ctx, "Cancellation policies seeded",
			"fee_percentage", c.configs.DefaultFeePercentage,
			"window_minutes", c.configs.DefaultWindowMinutes)
	}
	return nil
}

func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
