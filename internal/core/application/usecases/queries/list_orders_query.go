package queries

import (
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists every order, newest first, optionally restricted to
// a set of statuses.
type ListOrdersQuery struct {
	statuses []string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery parses status names case-insensitively. An unknown name
// is a ValidationError on field "status". No names means no filter.
func NewListOrdersQuery(statuses ...string) (ListOrdersQuery, error) {
	normalized := make([]string, 0, len(statuses))
	seen := make(map[order.Status]bool, len(statuses))
	for _, name := range statuses {
		status, err := order.ParseStatus(name)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		if seen[status] {
			continue
		}
		seen[status] = true
		normalized = append(normalized, status.String())
	}

	return ListOrdersQuery{
		statuses: normalized,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Statuses() []string {
	return q.statuses
}
