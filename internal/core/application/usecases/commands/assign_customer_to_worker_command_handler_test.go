package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/worker"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignCustomerToWorkerCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	previous := kernel.NewUUID()
	c, _ := customer.RestoreCustomer(kernel.NewUUID(), &previous)
	w, _ := worker.NewWorker(kernel.NewUUID(), kernel.NewUUID(), testNow)
	cmd, err := commands.NewAssignCustomerToWorkerCommand(w.ID(), c.ID())
	require.NoError(t, err)

	factory, uow, r := newUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		r.customers.On("GetForUpdate", ctx, c.ID()).Return(c, nil).Once(),
		r.workers.On("Get", ctx, w.ID()).Return(w, nil).Once(),
		r.customers.On("Update", ctx, c).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignCustomerToWorkerCommandHandler(factory)
	msg, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Customer "+c.ID().String()+" assigned to worker "+w.ID().String(), msg)
	assert.True(t, c.IsAssignedTo(w.ID()))
	r.assert(t)
}

func TestAssignCustomerToWorkerCommandHandler_Handle_MissingParties(t *testing.T) {
	t.Run("customer", func(t *testing.T) {
		ctx := context.Background()
		customerID := kernel.NewUUID()
		cmd, _ := commands.NewAssignCustomerToWorkerCommand(kernel.NewUUID(), customerID)

		factory, uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.customers.On("GetForUpdate", ctx, customerID).Return(nil, errs.NewObjectNotFoundError("customer_id", customerID)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewAssignCustomerToWorkerCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("worker", func(t *testing.T) {
		ctx := context.Background()
		c, _ := customer.NewCustomer(kernel.NewUUID())
		workerID := kernel.NewUUID()
		cmd, _ := commands.NewAssignCustomerToWorkerCommand(workerID, c.ID())

		factory, uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.customers.On("GetForUpdate", ctx, c.ID()).Return(c, nil).Once()
		r.workers.On("Get", ctx, workerID).Return(nil, errs.NewObjectNotFoundError("worker_id", workerID)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewAssignCustomerToWorkerCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, c.AssignedWorker())
		r.customers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
