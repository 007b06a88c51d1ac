package commands

import (
	"context"
)

// SeedCancellationPoliciesCommandHandler writes the configured policies only
// when the table is empty, so edits made in the database survive restarts.
type SeedCancellationPoliciesCommandHandler struct {
	uowFactory UoWFactory
}

func NewSeedCancellationPoliciesCommandHandler(uowFactory UoWFactory) SeedCancellationPoliciesCommandHandler {
	return SeedCancellationPoliciesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reports whether the policies were written.
func (h SeedCancellationPoliciesCommandHandler) Handle(ctx context.Context, cmd SeedCancellationPoliciesCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	policyRepo := uow.PolicyRepository()
	table, err := policyRepo.Table(ctx)
	if err != nil {
		return false, err
	}
	if !table.IsEmpty() {
		return false, nil
	}

	for _, p := range cmd.Policies() {
		if err = policyRepo.Add(ctx, p); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
