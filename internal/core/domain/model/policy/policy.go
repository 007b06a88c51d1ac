// Package policy describes cancellation fees: a percentage of the order price
// charged when an actor cancels close to the pickup time.
package policy

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"
)

// CancellationPolicy charges FeePercentage of the price when the order is
// cancelled within AppliesWithin of its pickup time.
type CancellationPolicy struct {
	role          user.Role
	feePercentage float64
	appliesWithin time.Duration
}

func NewCancellationPolicy(role user.Role, feePercentage float64, appliesWithinMinutes int) (CancellationPolicy, error) {
	p := CancellationPolicy{}
	if err := errors.Join(
		p.setRole(role),
		p.setFeePercentage(feePercentage),
		p.setWindow(appliesWithinMinutes),
	); err != nil {
		return CancellationPolicy{}, err
	}
	return p, nil
}

func (p CancellationPolicy) Role() user.Role              { return p.role }
func (p CancellationPolicy) FeePercentage() float64       { return p.feePercentage }
func (p CancellationPolicy) AppliesWithin() time.Duration { return p.appliesWithin }

// AppliesWithinMinutes is the window as stored in the policy table.
func (p CancellationPolicy) AppliesWithinMinutes() int {
	return int(p.appliesWithin / time.Minute)
}

func (p *CancellationPolicy) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *CancellationPolicy) setFeePercentage(pct float64) error {
	if pct < 0 || pct > 100 {
		return errs.NewValueIsOutOfRangeError("fee_percentage", pct, 0, 100)
	}
	p.feePercentage = pct
	return nil
}

func (p *CancellationPolicy) setWindow(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("applies_within_minutes", fmt.Errorf("%d is not greater than 0", minutes))
	}
	p.appliesWithin = time.Duration(minutes) * time.Minute
	return nil
}

// Table holds the policies of every role, each list ordered by window
// ascending so the tightest window wins.
type Table struct {
	byRole map[user.Role][]CancellationPolicy
}

func NewTable(policies ...CancellationPolicy) Table {
	t := Table{byRole: make(map[user.Role][]CancellationPolicy)}
	for _, p := range policies {
		t.byRole[p.role] = append(t.byRole[p.role], p)
	}
	for role := range t.byRole {
		list := t.byRole[role]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].appliesWithin < list[j].appliesWithin
		})
	}
	return t
}

// Match returns the first policy of role whose window covers timeToPickup.
func (t Table) Match(role user.Role, timeToPickup time.Duration) (CancellationPolicy, bool) {
	for _, p := range t.byRole[role] {
		if timeToPickup <= p.appliesWithin {
			return p, true
		}
	}
	return CancellationPolicy{}, false
}

func (t Table) IsEmpty() bool {
	return len(t.byRole) == 0
}
