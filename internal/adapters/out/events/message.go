// Package events publishes status history rows to a message broker. Every
// event is encoded as one JSON message keyed by the subject id, so a
// partitioned consumer sees the changes of one order in ledger order.
package events

import (
	"encoding/json"
	"time"

	"logistics/internal/core/ports"
)

const contentType = "application/json"

type statusMessage struct {
	EventID   string    `json:"event_id"`
	Subject   string    `json:"subject"`
	SubjectID string    `json:"subject_id"`
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

func encode(e ports.StatusEvent) ([]byte, error) {
	return json.Marshal(statusMessage{
		EventID:   e.ID.String(),
		Subject:   string(e.Subject),
		SubjectID: e.SubjectID.String(),
		Status:    e.Status,
		ChangedBy: e.ChangedBy.String(),
		ChangedAt: e.ChangedAt.UTC(),
	})
}

// routingKey is "<subject>.status.<status>", e.g. "order.status.claimed".
func routingKey(e ports.StatusEvent) string {
	return string(e.Subject) + ".status." + e.Status
}
