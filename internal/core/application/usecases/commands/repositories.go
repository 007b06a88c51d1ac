// Package commands contains business operations that modify system state.
// Every handler follows the same pattern: validate the command, open a unit
// of work, load and mutate aggregates, persist them and commit.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	PolicyRepoFactory interface {
		PolicyRepository() ports.PolicyRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// UoW spans every aggregate touched by the order lifecycle.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   // ... mutate o
	//   err = uow.OrderRepository().Update(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		UserRepoFactory
		WorkerRepoFactory
		PolicyRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// OutboxUoW is used by the status history relay.
	OutboxUoW interface {
		TxManager
		HistoryRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
