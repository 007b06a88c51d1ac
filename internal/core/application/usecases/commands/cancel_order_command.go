package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels an order on behalf of a customer (own orders
// only) or an admin (any order).
type CancelOrderCommand struct {
	userID  kernel.UUID
	orderID kernel.UUID
	role    user.Role

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(userID, orderID kernel.UUID, role user.Role) (CancelOrderCommand, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate(), role.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{
		userID:  userID,
		orderID: orderID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) UserID() kernel.UUID  { return c.userID }
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CancelOrderCommand) Role() user.Role      { return c.role }

// CancelOrderResult is returned to the caller after a successful cancellation.
type CancelOrderResult struct {
	Message         string
	OrderID         kernel.UUID
	CancellationFee float64
}
