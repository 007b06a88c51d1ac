// Package historyrepo owns the append-only status ledgers of orders and
// workers. Aggregate repositories append to them inside their own
// transaction together with one status_outbox row per entry. The relay
// reads and stamps the outbox only; ledger rows are never updated.
package historyrepo

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusHistoryDTO is one row of the order ledger.
type OrderStatusHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	ChangedBy uuid.UUID `gorm:"type:uuid;not null"`
	ChangedAt time.Time `gorm:"type:timestamptz;not null;index"`
}

func (OrderStatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// WorkerStatusHistoryDTO is one row of the worker ledger.
type WorkerStatusHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	ChangedBy uuid.UUID `gorm:"type:uuid;not null"`
	ChangedAt time.Time `gorm:"type:timestamptz;not null;index"`
}

func (WorkerStatusHistoryDTO) TableName() string {
	return "worker_status_history"
}

// StatusOutboxDTO tracks publication of one ledger entry. ID equals the
// ledger row id, Subject tells which ledger it came from.
type StatusOutboxDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Subject     string     `gorm:"type:varchar(16);not null"`
	SubjectID   uuid.UUID  `gorm:"type:uuid;not null"`
	Status      string     `gorm:"type:varchar(32);not null"`
	ChangedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	ChangedAt   time.Time  `gorm:"type:timestamptz;not null;index"`
	PublishedAt *time.Time `gorm:"type:timestamptz;index"`
}

func (StatusOutboxDTO) TableName() string {
	return "status_outbox"
}
