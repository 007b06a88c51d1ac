package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrListUnclaimedOrdersQueryIsNotConstructed = errors.New(
	"ListUnclaimedOrdersQuery must be created via NewListUnclaimedOrdersQuery constructor",
)

// ListUnclaimedOrdersQuery lists orders any worker may claim: no worker yet
// and still in the created status. The earliest pickup comes first.
type ListUnclaimedOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListUnclaimedOrdersQuery() ListUnclaimedOrdersQuery {
	return ListUnclaimedOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListUnclaimedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUnclaimedOrdersQueryIsNotConstructed)
}
