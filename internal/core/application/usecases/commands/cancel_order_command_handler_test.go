package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/policy"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func policyTable(t *testing.T) policy.Table {
	t.Helper()
	customerPolicy, err := policy.NewCancellationPolicy(user.Customer, 10, 60)
	require.NoError(t, err)
	adminPolicy, err := policy.NewCancellationPolicy(user.Admin, 0, 60)
	require.NoError(t, err)
	return policy.NewTable(customerPolicy, adminPolicy)
}

func newActor(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Ayesha", "ayesha@example.com", "+923001234567", role, testNow)
	require.NoError(t, err)
	return u
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		pickupIn time.Duration
		wantFee  float64
	}{
		{"outside the window", 2 * time.Hour, 0},
		{"inside the window", 30 * time.Minute, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			actor := newActor(t, user.Customer)
			o := newTestOrder(actor.ID(), tt.pickupIn)
			cmd, err := commands.NewCancelOrderCommand(actor.ID(), o.ID(), user.Customer)
			require.NoError(t, err)

			factory, uow, r := newUoW()
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				r.users.On("Get", ctx, actor.ID()).Return(actor, nil).Once(),
				r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
				r.policies.On("Table", ctx).Return(policyTable(t), nil).Once(),
				r.orders.On("Update", ctx, o).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			handler := commands.NewCancelOrderCommandHandler(factory, clock())
			result, err := handler.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.InDelta(t, tt.wantFee, result.CancellationFee, 0.0001)
			assert.True(t, result.OrderID.IsEqual(o.ID()))
			assert.Equal(t, "Order cancelled by customer Ayesha (ID: "+actor.ID().String()+")", result.Message)
			assert.Equal(t, order.Cancelled, o.Status())
			r.assert(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_AdminAnyOrder(t *testing.T) {
	ctx := context.Background()
	admin := newActor(t, user.Admin)
	o := newTestOrder(kernel.NewUUID(), 30*time.Minute)
	cmd, _ := commands.NewCancelOrderCommand(admin.ID(), o.ID(), user.Admin)

	factory, uow, r := newUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
	r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	r.policies.On("Table", ctx).Return(policyTable(t), nil).Once()
	r.orders.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, clock())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result.CancellationFee)
	require.Len(t, o.PendingStatusChanges(), 1)
	assert.True(t, o.PendingStatusChanges()[0].ChangedBy.IsEqual(admin.ID()))
}

func TestCancelOrderCommandHandler_Handle_WorkerForbidden(t *testing.T) {
	ctx := context.Background()
	w := newActor(t, user.Worker)
	cmd, _ := commands.NewCancelOrderCommand(w.ID(), kernel.NewUUID(), user.Worker)

	factory, uow, r := newUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("Get", ctx, w.ID()).Return(w, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, clock())
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	r.orders.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_RoleDoesNotMatchUser(t *testing.T) {
	ctx := context.Background()
	actor := newActor(t, user.Customer)
	cmd, _ := commands.NewCancelOrderCommand(actor.ID(), kernel.NewUUID(), user.Admin)

	factory, uow, r := newUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("Get", ctx, actor.ID()).Return(actor, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, clock())
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	r.orders.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewCancelOrderCommand(userID, kernel.NewUUID(), user.Customer)

	factory, uow, r := newUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("Get", ctx, userID).Return(nil, errs.NewObjectNotFoundError("user_id", userID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, clock())
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCancelOrderCommandHandler_Handle_OtherCustomersOrder(t *testing.T) {
	ctx := context.Background()
	actor := newActor(t, user.Customer)
	o := newTestOrder(kernel.NewUUID(), 2*time.Hour)
	cmd, _ := commands.NewCancelOrderCommand(actor.ID(), o.ID(), user.Customer)

	factory, uow, r := newUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("Get", ctx, actor.ID()).Return(actor, nil).Once()
	r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, clock())
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, order.Created, o.Status())
}

func TestCancelOrderCommandHandler_Handle_AfterPickup(t *testing.T) {
	ctx := context.Background()
	actor := newActor(t, user.Customer)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:           kernel.NewUUID(),
		CustomerID:   actor.ID(),
		AddressID:    kernel.NewUUID(),
		PickupTime:   testNow.Add(-time.Minute),
		DeliveryTime: testNow.Add(time.Hour),
		Status:       order.Created,
		Price:        1000,
		CreatedBy:    actor.ID(),
	})
	require.NoError(t, err)
	cmd, _ := commands.NewCancelOrderCommand(actor.ID(), o.ID(), user.Customer)

	factory, uow, r := newUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("Get", ctx, actor.ID()).Return(actor, nil).Once()
	r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	r.policies.On("Table", ctx).Return(policyTable(t), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, clock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, "Cannot cancel order after pickup time", err.Error())
	r.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
