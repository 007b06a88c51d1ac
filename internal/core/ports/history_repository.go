package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// StatusSubject tells order and worker ledger entries apart.
type StatusSubject string

const (
	OrderSubject  StatusSubject = "order"
	WorkerSubject StatusSubject = "worker"
)

// StatusEvent is a status history row as seen by the outbox relay.
type StatusEvent struct {
	ID        kernel.UUID
	Subject   StatusSubject
	SubjectID kernel.UUID
	Status    string
	ChangedBy kernel.UUID
	ChangedAt time.Time
}

// HistoryRepository gives the relay access to history rows that have not
// been published yet.
type HistoryRepository interface {
	// ListUnpublished returns at most limit rows across both ledgers, oldest
	// change first. Rows are locked and skipped by concurrent relays.
	ListUnpublished(ctx context.Context, limit int) ([]StatusEvent, error)

	// MarkPublished records the given events as delivered. Ledger rows are
	// append-only; publication state lives beside them.
	MarkPublished(ctx context.Context, events []StatusEvent, at time.Time) error
}
