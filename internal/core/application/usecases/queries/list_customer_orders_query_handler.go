package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

func (h ListCustomerOrdersQueryHandler) Handle(ctx context.Context, query ListCustomerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+orderViewColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	return scanOrderViews(rows)
}
