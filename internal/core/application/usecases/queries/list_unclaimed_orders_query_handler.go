package queries

import (
	"context"

	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListUnclaimedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListUnclaimedOrdersQueryHandler(db *gorm.DB) ListUnclaimedOrdersQueryHandler {
	return ListUnclaimedOrdersQueryHandler{db: db}
}

func (h ListUnclaimedOrdersQueryHandler) Handle(ctx context.Context, query ListUnclaimedOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+orderViewColumns+`
		FROM orders
		WHERE worker_id IS NULL AND status = ?
		ORDER BY pickup_time, id
	`, order.Created.String()).Rows()
	if err != nil {
		return nil, err
	}
	return scanOrderViews(rows)
}
