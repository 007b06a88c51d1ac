package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories it returns
// are bound to the transaction started by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback is a no-op after a successful Commit.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CustomerRepository() CustomerRepository
	UserRepository() UserRepository
	WorkerRepository() WorkerRepository
	PolicyRepository() PolicyRepository
	HistoryRepository() HistoryRepository
}
