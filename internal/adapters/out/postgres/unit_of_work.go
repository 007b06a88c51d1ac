// Package postgres wires the GORM repositories into a unit of work: one
// database transaction shared by every repository a command touches.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	// ... mutate o
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin run outside the transaction, so
// handlers fetch them after Begin.
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/historyrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/policyrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/adapters/out/postgres/workerrepo"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create without the interface conversion.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork implements ports.UnitOfWork. It is not safe for concurrent
// use; every command creates its own.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	committed bool
}

// Begin starts the transaction. A second call is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	uow.committed = false
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err == nil {
		uow.committed = true
	}
	return err
}

// Rollback discards the transaction. After a successful Commit it does
// nothing, so handlers can defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		if uow.committed {
			return nil
		}
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) WorkerRepository() ports.WorkerRepository {
	return workerrepo.NewGormWorkerRepository(uow.conn())
}

func (uow *GormUnitOfWork) PolicyRepository() ports.PolicyRepository {
	return policyrepo.NewGormPolicyRepository(uow.conn())
}

func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
