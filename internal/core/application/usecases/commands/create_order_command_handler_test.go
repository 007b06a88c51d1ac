package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, customerID, addressID kernel.UUID, workerID *kernel.UUID, pickupIn time.Duration) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, workerID, addressID,
		testNow.Add(pickupIn), testNow.Add(pickupIn+2*time.Hour), 1000, customerID,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	c, _ := customer.NewCustomer(customerID)
	address, _ := customer.NewAddress(kernel.NewUUID(), customerID, "Street 1", "Lahore", "", true, testNow)
	cmd := newCreateOrderCommand(t, customerID, address.ID(), nil, 2*time.Hour)

	factory, uow, r := newUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		r.customers.On("Get", ctx, customerID).Return(c, nil).Once(),
		r.customers.On("GetAddress", ctx, address.ID()).Return(address, nil).Once(),
		r.orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(cmd.OrderID()) && o.Status() == order.Created && len(o.PendingStatusChanges()) == 1
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory, clock())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	r.assert(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PickupInPast(t *testing.T) {
	ctx := context.Background()
	cmd := newCreateOrderCommand(t, kernel.NewUUID(), kernel.NewUUID(), nil, -time.Minute)

	factory := new(MockUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, clock())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, "pickup_time", errs.FieldOf(err))
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ForeignAddress(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	c, _ := customer.NewCustomer(customerID)
	foreign, _ := customer.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "Street 1", "Lahore", "", false, testNow)
	cmd := newCreateOrderCommand(t, customerID, foreign.ID(), nil, 2*time.Hour)

	factory, uow, r := newUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	r.customers.On("Get", ctx, customerID).Return(c, nil).Once()
	r.customers.On("GetAddress", ctx, foreign.ID()).Return(foreign, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, clock())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_MissingWorker(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	workerID := kernel.NewUUID()
	c, _ := customer.NewCustomer(customerID)
	address, _ := customer.NewAddress(kernel.NewUUID(), customerID, "Street 1", "Lahore", "", false, testNow)
	cmd := newCreateOrderCommand(t, customerID, address.ID(), &workerID, 2*time.Hour)

	factory, uow, r := newUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	r.customers.On("Get", ctx, customerID).Return(c, nil).Once()
	r.customers.On("GetAddress", ctx, address.ID()).Return(address, nil).Once()
	r.workers.On("Get", ctx, workerID).Return(nil, errs.NewObjectNotFoundError("worker_id", workerID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, clock())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.assert(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd := newCreateOrderCommand(t, kernel.NewUUID(), kernel.NewUUID(), nil, 2*time.Hour)

	factory, uow, _ := newUoW()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, clock())
	err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, clock())

	err := handler.Handle(context.Background(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), nil, kernel.NewUUID(),
		testNow, testNow.Add(time.Hour), 10, kernel.NewUUID(),
	)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
