package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/policy"
	"logistics/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedCancellationPoliciesCommandHandler_Handle(t *testing.T) {
	p, _ := policy.NewCancellationPolicy(user.Customer, 10, 60)
	cmd, err := commands.NewSeedCancellationPoliciesCommand(p)
	require.NoError(t, err)

	t.Run("should seed an empty table", func(t *testing.T) {
		ctx := context.Background()
		factory, uow, r := newUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			r.policies.On("Table", ctx).Return(policy.NewTable(), nil).Once(),
			r.policies.On("Add", ctx, p).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		seeded, err := commands.NewSeedCancellationPoliciesCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, seeded)
		r.assert(t)
	})

	t.Run("should keep an existing table", func(t *testing.T) {
		ctx := context.Background()
		factory, uow, r := newUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		r.policies.On("Table", ctx).Return(policy.NewTable(p), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		seeded, err := commands.NewSeedCancellationPoliciesCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, seeded)
		r.policies.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestNewSeedCancellationPoliciesCommand_Empty(t *testing.T) {
	_, err := commands.NewSeedCancellationPoliciesCommand()

	require.Error(t, err)
}
