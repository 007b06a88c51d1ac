package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery returns the status ledger of one order as seen by an
// actor. Admins see every order, customers their own and workers the orders
// assigned to them.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID
	actorID kernel.UUID
	role    user.Role

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID, actorID kernel.UUID, role user.Role) (GetOrderHistoryQuery, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate(), role.Validate()); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{
		orderID: orderID,
		actorID: actorID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderHistoryQuery) ActorID() kernel.UUID { return q.actorID }
func (q GetOrderHistoryQuery) Role() user.Role      { return q.role }

// StatusHistoryEntry is one ledger row.
type StatusHistoryEntry struct {
	Status    string
	ChangedBy kernel.UUID
	ChangedAt time.Time
}
