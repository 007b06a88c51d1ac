package historyrepo

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHistoryRepository implements ports.HistoryRepository.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// ListUnpublished locks up to limit outbox entries with SKIP LOCKED, oldest
// change first.
func (r *GormHistoryRepository) ListUnpublished(ctx context.Context, limit int) ([]ports.StatusEvent, error) {
	var rows []StatusOutboxDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("changed_at, id").Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]ports.StatusEvent, 0, len(rows))
	for _, row := range rows {
		e, err := toEvent(ports.StatusSubject(row.Subject), row.ID, row.SubjectID, row.Status, row.ChangedBy, row.ChangedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// MarkPublished stamps published_at on the outbox entries behind events.
// The ledgers themselves are left untouched.
func (r *GormHistoryRepository) MarkPublished(ctx context.Context, events []ports.StatusEvent, at time.Time) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID.Bytes())
	}
	return r.db.WithContext(ctx).Model(&StatusOutboxDTO{}).
		Where("id IN ?", ids).
		Update("published_at", at.UTC()).Error
}

func toEvent(subject ports.StatusSubject, id, subjectID uuid.UUID, status string, changedBy uuid.UUID, changedAt time.Time) (ports.StatusEvent, error) {
	eventID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ports.StatusEvent{}, err
	}
	sID, err := kernel.UUIDFromBytes(subjectID[:])
	if err != nil {
		return ports.StatusEvent{}, err
	}
	by, err := kernel.UUIDFromBytes(changedBy[:])
	if err != nil {
		return ports.StatusEvent{}, err
	}
	return ports.StatusEvent{
		ID:        eventID,
		Subject:   subject,
		SubjectID: sID,
		Status:    status,
		ChangedBy: by,
		ChangedAt: changedAt.UTC(),
	}, nil
}
