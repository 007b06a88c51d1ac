package services

import (
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/policy"
	"logistics/internal/core/domain/model/user"
)

// CancellationFeeCalculator prices a cancellation from the policies of the
// cancelling actor's role.
//
// Business rules:
//   - The policies of the role are scanned tightest window first
//   - The first window that covers the time left until pickup applies
//   - fee = fee_percentage / 100 * price, otherwise 0
//   - The fee always lies in [0, price]
//
// Example usage:
//
//	calc := services.NewCancellationFeeCalculator(table)
//	fee := calc.Calculate(o, user.Customer, clock.Now())
//	if err := o.Cancel(fee, actorID, clock.Now()); err != nil {
//	    return err
//	}
type CancellationFeeCalculator struct {
	policies policy.Table
}

func NewCancellationFeeCalculator(policies policy.Table) CancellationFeeCalculator {
	return CancellationFeeCalculator{policies: policies}
}

// Calculate returns the fee owed if role cancels o at now. The caller is
// responsible for rejecting cancellations after pickup; a passed pickup
// yields a negative time-to-pickup which falls inside every window.
func (c CancellationFeeCalculator) Calculate(o *order.Order, role user.Role, now time.Time) float64 {
	p, ok := c.policies.Match(role, o.TimeToPickup(now))
	if !ok {
		return 0
	}

	fee := p.FeePercentage() / 100 * o.Price()
	switch {
	case fee < 0:
		return 0
	case fee > o.Price():
		return o.Price()
	}
	return fee
}
