package commands

import (
	"errors"

	"logistics/internal/core/domain/model/policy"
	"logistics/internal/pkg/guard"
)

var ErrSeedCancellationPoliciesCommandIsNotConstructed = errors.New(
	"SeedCancellationPoliciesCommand must be created via NewSeedCancellationPoliciesCommand constructor",
)

// SeedCancellationPoliciesCommand fills an empty policy table at startup.
type SeedCancellationPoliciesCommand struct {
	policies []policy.CancellationPolicy

	guard guard.ConstructorGuard
}

func NewSeedCancellationPoliciesCommand(policies ...policy.CancellationPolicy) (SeedCancellationPoliciesCommand, error) {
	if len(policies) == 0 {
		return SeedCancellationPoliciesCommand{}, errors.New("at least one policy is required")
	}
	return SeedCancellationPoliciesCommand{
		policies: policies,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SeedCancellationPoliciesCommand) Validate() error {
	return c.guard.Validate(ErrSeedCancellationPoliciesCommandIsNotConstructed)
}

func (c SeedCancellationPoliciesCommand) Policies() []policy.CancellationPolicy {
	return c.policies
}
