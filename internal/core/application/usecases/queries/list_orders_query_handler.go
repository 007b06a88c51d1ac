package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	if statuses := query.Statuses(); len(statuses) > 0 {
		rows, err := db.Raw(`SELECT `+orderViewColumns+`
			FROM orders
			WHERE status = ANY(?::text[])
			ORDER BY created_at DESC, id
		`, pq.Array(statuses)).Rows()
		if err != nil {
			return nil, err
		}
		return scanOrderViews(rows)
	}

	rows, err := db.Raw(`SELECT ` + orderViewColumns + `
		FROM orders
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	return scanOrderViews(rows)
}
