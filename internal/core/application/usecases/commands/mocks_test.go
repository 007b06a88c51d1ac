package commands_test

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/policy"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/model/worker"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Claim(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) AddAddress(ctx context.Context, a *customer.Address) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockCustomerRepository) GetAddress(ctx context.Context, id kernel.UUID) (*customer.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Address), args.Error(1)
}

func (m *MockCustomerRepository) ListAddresses(ctx context.Context, customerID kernel.UUID) ([]*customer.Address, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Address), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, w *worker.Worker) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

type MockPolicyRepository struct{ mock.Mock }

func (m *MockPolicyRepository) Add(ctx context.Context, p policy.CancellationPolicy) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPolicyRepository) Table(ctx context.Context) (policy.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).(policy.Table), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) ListUnpublished(ctx context.Context, limit int) ([]ports.StatusEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.StatusEvent), args.Error(1)
}

func (m *MockHistoryRepository) MarkPublished(ctx context.Context, events []ports.StatusEvent, at time.Time) error {
	return m.Called(ctx, events, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events []ports.StatusEvent) error {
	return m.Called(ctx, events).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	return m.Called().Get(0).(ports.WorkerRepository)
}

func (m *MockUoW) PolicyRepository() ports.PolicyRepository {
	return m.Called().Get(0).(ports.PolicyRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOutboxUoW struct{ mock.Mock }

func (m *MockOutboxUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOutboxUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOutboxUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOutboxUoW) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}

// repos groups the repository mocks handed out by a MockUoW.
type repos struct {
	orders    *MockOrderRepository
	customers *MockCustomerRepository
	users     *MockUserRepository
	workers   *MockWorkerRepository
	policies  *MockPolicyRepository
}

// newUoW returns a factory producing one MockUoW whose repository getters
// may be called any number of times.
func newUoW() (*MockUoWFactory, *MockUoW, repos) {
	r := repos{
		orders:    new(MockOrderRepository),
		customers: new(MockCustomerRepository),
		users:     new(MockUserRepository),
		workers:   new(MockWorkerRepository),
		policies:  new(MockPolicyRepository),
	}

	uow := new(MockUoW)
	uow.On("OrderRepository").Return(r.orders).Maybe()
	uow.On("CustomerRepository").Return(r.customers).Maybe()
	uow.On("UserRepository").Return(r.users).Maybe()
	uow.On("WorkerRepository").Return(r.workers).Maybe()
	uow.On("PolicyRepository").Return(r.policies).Maybe()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, r
}

func (r repos) assert(t mock.TestingT) {
	r.orders.AssertExpectations(t)
	r.customers.AssertExpectations(t)
	r.users.AssertExpectations(t)
	r.workers.AssertExpectations(t)
	r.policies.AssertExpectations(t)
}

func clock() kernel.FixedClock {
	return kernel.FixedClock{At: testNow}
}

func newTestOrder(customerID kernel.UUID, pickupIn time.Duration) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID:   customerID,
		AddressID:    kernel.NewUUID(),
		PickupTime:   testNow.Add(pickupIn),
		DeliveryTime: testNow.Add(pickupIn + 2*time.Hour),
		Price:        1000,
	}, customerID, testNow.Add(-time.Minute))
	if err != nil {
		panic(err)
	}
	o.ClearPendingStatusChanges()
	return o
}
