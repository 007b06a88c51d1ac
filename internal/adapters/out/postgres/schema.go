package postgres

import (
	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/historyrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/policyrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/adapters/out/postgres/workerrepo"

	"gorm.io/gorm"
)

// foreignKeys are added after AutoMigrate because the DTOs carry no gorm
// relations. Each statement is idempotent. Ledger rows restrict deletes of
// their subject so history is never removed implicitly.
var foreignKeys = []struct {
	name, table, column, references string
	onDelete                        string
}{
	{"fk_workers_user", "workers", "id", "users(id)", "CASCADE"},
	{"fk_customers_user", "customers", "id", "users(id)", "CASCADE"},
	{"fk_customers_worker", "customers", "assigned_worker_id", "workers(id)", "SET NULL"},
	{"fk_addresses_customer", "addresses", "customer_id", "customers(id)", "CASCADE"},
	{"fk_orders_customer", "orders", "customer_id", "customers(id)", "RESTRICT"},
	{"fk_orders_worker", "orders", "worker_id", "workers(id)", "SET NULL"},
	{"fk_orders_address", "orders", "address_id", "addresses(id)", "RESTRICT"},
	{"fk_orders_created_by", "orders", "created_by", "users(id)", "RESTRICT"},
	{"fk_order_history_order", "order_status_history", "order_id", "orders(id)", "RESTRICT"},
	{"fk_order_history_user", "order_status_history", "changed_by", "users(id)", "RESTRICT"},
	{"fk_worker_history_worker", "worker_status_history", "worker_id", "workers(id)", "RESTRICT"},
	{"fk_worker_history_user", "worker_status_history", "changed_by", "users(id)", "RESTRICT"},
}

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&workerrepo.WorkerDTO{},
		&customerrepo.CustomerDTO{},
		&customerrepo.AddressDTO{},
		&orderrepo.OrderDTO{},
		&historyrepo.OrderStatusHistoryDTO{},
		&historyrepo.WorkerStatusHistoryDTO{},
		&historyrepo.StatusOutboxDTO{},
		&policyrepo.CancellationPolicyDTO{},
	); err != nil {
		return err
	}

	for _, fk := range foreignKeys {
		stmt := "DO $$ BEGIN ALTER TABLE " + fk.table +
			" ADD CONSTRAINT " + fk.name +
			" FOREIGN KEY (" + fk.column + ") REFERENCES " + fk.references +
			" ON DELETE " + fk.onDelete +
			"; EXCEPTION WHEN duplicate_object THEN NULL; END $$"
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
