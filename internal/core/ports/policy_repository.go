package ports

import (
	"context"

	"logistics/internal/core/domain/model/policy"
)

// PolicyRepository reads and seeds the cancellation policy table.
type PolicyRepository interface {
	Add(ctx context.Context, p policy.CancellationPolicy) error
	Table(ctx context.Context) (policy.Table, error)
}
